package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/service"
)

type GoalHandler struct {
	goalService service.GoalService
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService service.GoalService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
	}
}

// Register mounts the goal routes on rg
func (h *GoalHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/goals", h.ListGoals)
	rg.POST("/goals", h.CreateGoal)
	rg.GET("/goals/:id", h.GetGoal)
	rg.PUT("/goals/:id", h.UpdateGoal)
	rg.DELETE("/goals/:id", h.DeleteGoal)
	rg.POST("/goals/:id/progress", h.RecordProgress)
}

// ListGoals handles GET /api/v1/goals?category=
func (h *GoalHandler) ListGoals(c *gin.Context) {
	goals, err := h.goalService.ListGoals(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeServiceError(c, err, "Goal", "")
		return
	}
	c.JSON(http.StatusOK, goals)
}

// CreateGoal handles POST /api/v1/goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req models.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), &req)
	if err != nil {
		writeServiceError(c, err, "Goal", req.ID)
		return
	}
	c.JSON(http.StatusCreated, goal)
}

// GetGoal handles GET /api/v1/goals/:id
func (h *GoalHandler) GetGoal(c *gin.Context) {
	id := c.Param("id")
	goal, err := h.goalService.GetGoal(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err, "Goal", id)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// UpdateGoal handles PUT /api/v1/goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err, "Goal", id)
		return
	}
	c.JSON(http.StatusOK, goal)
}

// DeleteGoal handles DELETE /api/v1/goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	id := c.Param("id")
	if err := h.goalService.DeleteGoal(c.Request.Context(), id); err != nil {
		writeServiceError(c, err, "Goal", id)
		return
	}
	c.Status(http.StatusNoContent)
}

// RecordProgress handles POST /api/v1/goals/:id/progress
func (h *GoalHandler) RecordProgress(c *gin.Context) {
	id := c.Param("id")

	var req models.RecordProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, err)
		return
	}

	goal, err := h.goalService.RecordProgress(c.Request.Context(), id, &req)
	if err != nil {
		writeServiceError(c, err, "Goal", id)
		return
	}
	c.JSON(http.StatusOK, goal)
}
