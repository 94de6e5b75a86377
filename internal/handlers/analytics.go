package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/JonnyWalker81/habithub/backend/internal/apierror"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
	"github.com/JonnyWalker81/habithub/backend/internal/presenter"
	"github.com/JonnyWalker81/habithub/backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
	trendDays        int
}

// NewAnalyticsHandler creates a new analytics handler. trendDays is the
// default window for the todo trend.
func NewAnalyticsHandler(analyticsService service.AnalyticsService, trendDays int) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		trendDays:        trendDays,
	}
}

// Register mounts the analytics routes on rg
func (h *AnalyticsHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/analytics")
	a.GET("/dashboard", h.GetDashboard)
	a.GET("/goals/:id", h.GetGoalProgress)
	a.GET("/categories/:name", h.GetCategoryProgress)
	a.GET("/streaks", h.GetStreaks)
	a.GET("/todos", h.GetTodoStats)
	a.GET("/todos/day-of-week", h.GetDayOfWeek)
	a.GET("/todos/trend", h.GetTodoTrend)
	a.GET("/weekly-summary", h.GetWeeklySummary)
	a.GET("/finance", h.GetFinanceOverview)
}

// DashboardResponse adds the encouragement text to the dashboard
type DashboardResponse struct {
	*models.Dashboard
	Message string `json:"message"`
}

// GoalProgressResponse adds display text to a goal's progress
type GoalProgressResponse struct {
	*models.GoalProgressSummary
	Message string `json:"message"`
}

// GetDashboard handles GET /api/v1/analytics/dashboard?date=
func (h *AnalyticsHandler) GetDashboard(c *gin.Context) {
	ref, ok := referenceTime(c)
	if !ok {
		return
	}

	dashboard, err := h.analyticsService.Dashboard(c.Request.Context(), ref)
	if err != nil {
		writeServiceError(c, err, "Dashboard", "")
		return
	}
	c.JSON(http.StatusOK, DashboardResponse{
		Dashboard: dashboard,
		Message:   presenter.Message(dashboard.Band),
	})
}

// GetGoalProgress handles GET /api/v1/analytics/goals/:id?date=
func (h *AnalyticsHandler) GetGoalProgress(c *gin.Context) {
	id := c.Param("id")
	ref, ok := referenceTime(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.GoalProgress(c.Request.Context(), id, ref)
	if err != nil {
		writeServiceError(c, err, "Goal", id)
		return
	}
	c.JSON(http.StatusOK, GoalProgressResponse{
		GoalProgressSummary: summary,
		Message:             presenter.Message(summary.Band),
	})
}

// GetCategoryProgress handles GET /api/v1/analytics/categories/:name?date=
func (h *AnalyticsHandler) GetCategoryProgress(c *gin.Context) {
	ref, ok := referenceTime(c)
	if !ok {
		return
	}

	summary, err := h.analyticsService.CategoryProgress(c.Request.Context(), c.Param("name"), ref)
	if err != nil {
		writeServiceError(c, err, "Category", c.Param("name"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetStreaks handles GET /api/v1/analytics/streaks?date=
func (h *AnalyticsHandler) GetStreaks(c *gin.Context) {
	ref, ok := referenceTime(c)
	if !ok {
		return
	}

	streaks, err := h.analyticsService.Streaks(c.Request.Context(), ref)
	if err != nil {
		writeServiceError(c, err, "Streaks", "")
		return
	}
	c.JSON(http.StatusOK, streaks)
}

// GetTodoStats handles GET /api/v1/analytics/todos
func (h *AnalyticsHandler) GetTodoStats(c *gin.Context) {
	stats, err := h.analyticsService.TodoStats(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Todo stats", "")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetDayOfWeek handles GET /api/v1/analytics/todos/day-of-week
func (h *AnalyticsHandler) GetDayOfWeek(c *gin.Context) {
	days, err := h.analyticsService.DayOfWeek(c.Request.Context())
	if err != nil {
		writeServiceError(c, err, "Day of week", "")
		return
	}
	c.JSON(http.StatusOK, days)
}

// GetTodoTrend handles GET /api/v1/analytics/todos/trend?days=&date=
func (h *AnalyticsHandler) GetTodoTrend(c *gin.Context) {
	ref, ok := referenceTime(c)
	if !ok {
		return
	}

	days := h.trendDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 366 {
			apierror.WriteProblem(c, apierror.NewValidationError(apierror.GetRequestID(c), []apierror.FieldError{
				{Field: "days", Message: "must be an integer between 1 and 366", Code: "invalid"},
			}))
			return
		}
		days = n
	}

	trend, err := h.analyticsService.TodoTrend(c.Request.Context(), ref, days)
	if err != nil {
		writeServiceError(c, err, "Todo trend", "")
		return
	}
	c.JSON(http.StatusOK, trend)
}

// GetWeeklySummary handles GET /api/v1/analytics/weekly-summary?date=
func (h *AnalyticsHandler) GetWeeklySummary(c *gin.Context) {
	ref, ok := referenceTime(c)
	if !ok {
		return
	}

	summaries, err := h.analyticsService.WeeklySummary(c.Request.Context(), ref)
	if err != nil {
		writeServiceError(c, err, "Weekly summary", "")
		return
	}
	if summaries == nil {
		summaries = []models.WeeklySummary{}
	}
	c.JSON(http.StatusOK, summaries)
}

// GetFinanceOverview handles GET /api/v1/analytics/finance?date=
func (h *AnalyticsHandler) GetFinanceOverview(c *gin.Context) {
	ref, ok := referenceTime(c)
	if !ok {
		return
	}

	overview, err := h.analyticsService.FinanceOverview(c.Request.Context(), ref)
	if err != nil {
		writeServiceError(c, err, "Finance overview", "")
		return
	}
	c.JSON(http.StatusOK, overview)
}
