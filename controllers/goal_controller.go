package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Hazen1Yang/pathfinder-backend/middlewares"
	"github.com/Hazen1Yang/pathfinder-backend/services"
	"github.com/Hazen1Yang/pathfinder-backend/store"
)

type GoalController struct {
	Goals *services.GoalService
}

func NewGoalController(goals *services.GoalService) *GoalController {
	return &GoalController{Goals: goals}
}

// respondStoreErr maps repository failures onto the HTTP surface. Validation
// aborts with 400, a vanished goal is 404, a broken remote store is 503 and
// is never retried here.
func respondStoreErr(c *gin.Context, err error) {
	var vErr *store.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "goal not found"})
	case errors.Is(err, store.ErrRemoteUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "goal storage is unavailable, try again later"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func (gc *GoalController) List(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	goals, err := gc.Goals.List(owner)
	if err != nil {
		respondStoreErr(c, err)
		return
	}
	c.JSON(http.StatusOK, goals)
}

func (gc *GoalController) Create(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	var fields store.GoalFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.Goals.Create(owner, fields)
	if err != nil {
		respondStoreErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

func (gc *GoalController) Update(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	var fields store.GoalFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, err := gc.Goals.Update(owner, c.Param("id"), fields)
	if err != nil {
		respondStoreErr(c, err)
		return
	}
	c.JSON(http.StatusOK, goal)
}

func (gc *GoalController) Delete(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	if err := gc.Goals.Delete(owner, c.Param("id")); err != nil {
		respondStoreErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearAll wipes the scope. The confirmation dialog is the client's job;
// this endpoint just does what it is told, once.
func (gc *GoalController) ClearAll(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	if err := gc.Goals.ClearAll(owner); err != nil {
		respondStoreErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (gc *GoalController) AddTask(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	var input struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.Goals.AddTask(owner, c.Param("id"), input.Text); err != nil {
		respondStoreErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func taskIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "task index must be a number"})
		return 0, false
	}
	return idx, true
}

func (gc *GoalController) ToggleTask(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	idx, ok := taskIndex(c)
	if !ok {
		return
	}
	var input struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gc.Goals.ToggleTask(owner, c.Param("id"), idx, input.Completed); err != nil {
		respondStoreErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (gc *GoalController) DeleteTask(c *gin.Context) {
	owner := middlewares.OwnerFromContext(c)
	idx, ok := taskIndex(c)
	if !ok {
		return
	}

	if err := gc.Goals.DeleteTask(owner, c.Param("id"), idx); err != nil {
		respondStoreErr(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AdoptDeviceGoals imports the device-scoped list into the signed-in
// account. Requires auth plus the device header naming the list to import.
func (gc *GoalController) AdoptDeviceGoals(c *gin.Context) {
	userID := c.GetString("userID")
	device := c.GetHeader(middlewares.DeviceIDHeader)
	if device == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": middlewares.DeviceIDHeader + " header required"})
		return
	}

	adopted, err := gc.Goals.AdoptDeviceGoals(userID, device)
	if err != nil {
		respondStoreErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"adopted": adopted})
}
