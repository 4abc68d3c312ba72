package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Hazen1Yang/pathfinder-backend/services"
)

type DailyTaskController struct {
	Daily *services.DailyTaskService
	Users *services.UserService
}

func NewDailyTaskController(daily *services.DailyTaskService, users *services.UserService) *DailyTaskController {
	return &DailyTaskController{Daily: daily, Users: users}
}

// Today returns the user's current task list. Users who have not taken the
// quiz get the instructional placeholder, never an error.
func (dc *DailyTaskController) Today(c *gin.Context) {
	userID := c.GetString("userID")

	interest, err := dc.Users.CareerInterest(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	tasks, err := dc.Daily.GetTodaysTasks(userID, interest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// Complete marks one displayed task done for the rest of the 24h window.
func (dc *DailyTaskController) Complete(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task index must be a number"})
		return
	}

	if err := dc.Daily.CompleteTask(c.GetString("userID"), idx); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
