package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Hazen1Yang/pathfinder-backend/services"
)

type QuizController struct {
	Quiz *services.QuizService
	Log  *zap.Logger
}

func NewQuizController(quiz *services.QuizService, log *zap.Logger) *QuizController {
	return &QuizController{Quiz: quiz, Log: log}
}

type QuizInput struct {
	Answers []int `json:"answers" binding:"required"`
}

// Score validates and scores a submission. Signed-in callers get the mapped
// interest written to their profile; anonymous callers just get the result
// back to keep client-side.
func (qc *QuizController) Score(c *gin.Context) {
	var input QuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := services.ScoreQuiz(input.Answers)
	if err != nil {
		var vErr *services.QuizValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please answer all questions before submitting the quiz.", "missing": vErr.Missing})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if userID := c.GetString("userID"); userID != "" {
		if err := qc.Quiz.SaveResult(userID, result); err != nil {
			// The score itself stands; saving the interest is best effort.
			qc.Log.Warn("could not persist quiz result",
				zap.String("user", userID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// Recommendations returns the program track for a quiz category.
func (qc *QuizController) Recommendations(c *gin.Context) {
	track, ok := services.ProgramTracks[c.Param("category")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, track)
}

// Roadmap returns the personalized roadmap heading for a quiz category.
func (qc *QuizController) Roadmap(c *gin.Context) {
	track, ok := services.RoadmapTracks[c.Param("category")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown category"})
		return
	}
	c.JSON(http.StatusOK, track)
}
