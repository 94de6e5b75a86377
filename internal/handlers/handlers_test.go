package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/habithub/backend/internal/analytics"
	"github.com/JonnyWalker81/habithub/backend/internal/apierror"
	"github.com/JonnyWalker81/habithub/backend/internal/repository/sqlite"
	"github.com/JonnyWalker81/habithub/backend/internal/service"
)

var handlerNow = time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := sqlite.Open(filepath.Join(t.TempDir(), "habithub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	engine := analytics.NewEngine(
		analytics.WithClock(func() time.Time { return handlerNow }),
		analytics.WithLocation(time.UTC),
	)
	goalRepo := sqlite.NewGoalRepository(store)
	todoRepo := sqlite.NewTodoListRepository(store)
	financeRepo := sqlite.NewFinanceRepository(store)

	r := gin.New()
	v1 := r.Group("/api/v1")
	NewGoalHandler(service.NewGoalService(goalRepo, engine)).Register(v1)
	NewTodoHandler(service.NewTodoService(todoRepo, engine)).Register(v1)
	NewFinanceHandler(service.NewFinanceService(financeRepo, engine)).Register(v1)
	NewAnalyticsHandler(service.NewAnalyticsService(goalRepo, todoRepo, financeRepo, engine), 7).Register(v1)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func createGoal(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/goals", map[string]any{
		"title":     "Walk 5 km",
		"type":      "quantitative",
		"category":  "Health",
		"timeframe": "daily",
		"target":    5,
		"metric":    map[string]any{"type": "distance", "unit": "km"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	goal := decode[map[string]any](t, w)
	return goal["id"].(string)
}

func TestGoalLifecycle(t *testing.T) {
	r := newTestRouter(t)
	id := createGoal(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/goals/"+id+"/progress", map[string]any{"value": 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	goal := decode[map[string]any](t, w)
	assert.Equal(t, "completed", goal["status"])
	assert.Len(t, goal["progress_history"], 1)

	w = do(t, r, http.MethodGet, "/api/v1/analytics/goals/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[map[string]any](t, w)
	assert.Equal(t, float64(100), summary["progress_percent"])
	assert.Equal(t, "goal-reached", summary["band"])
	assert.Equal(t, "Amazing job! You've reached your goal! 🎉", summary["message"])

	w = do(t, r, http.MethodGet, "/api/v1/goals?category=Health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 1)

	w = do(t, r, http.MethodDelete, "/api/v1/goals/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/goals/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	problem := decode[apierror.ProblemDetails](t, w)
	assert.Equal(t, apierror.TypeNotFound, problem.Type)
	assert.Equal(t, apierror.ContentTypeProblemJSON, w.Header().Get("Content-Type"))
}

func TestCreateGoal_ValidationProblems(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/goals", map[string]any{
		"type":      "quantitative",
		"category":  "Health",
		"timeframe": "fortnightly",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	problem := decode[apierror.ProblemDetails](t, w)
	assert.Equal(t, apierror.TypeValidation, problem.Type)

	fields := map[string]string{}
	for _, fe := range problem.Errors {
		fields[fe.Field] = fe.Code
	}
	assert.Equal(t, "required", fields["title"])
	assert.Equal(t, "oneof", fields["timeframe"])

	w = do(t, r, http.MethodPost, "/api/v1/goals", map[string]any{
		"id":        "550e8400-e29b-41d4-a716-446655440000",
		"title":     "Legacy id",
		"type":      "qualitative",
		"category":  "Personal",
		"timeframe": "weekly",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierror.TypeInvalidUUID, decode[apierror.ProblemDetails](t, w).Type)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/goals", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apierror.TypeBadRequest, decode[apierror.ProblemDetails](t, rec).Type)
}

func TestRecordProgress_FutureDate(t *testing.T) {
	r := newTestRouter(t)
	id := createGoal(t, r)

	w := do(t, r, http.MethodPost, "/api/v1/goals/"+id+"/progress", map[string]any{
		"value": 1,
		"date":  "2024-03-12T08:00:00Z",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierror.TypeFutureTimestamp, decode[apierror.ProblemDetails](t, w).Type)
}

func TestTodosAndDashboard(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPut, "/api/v1/todos", map[string]any{
		"date": "2024-03-10",
		"items": []map[string]any{
			{"title": "Stretch", "status": "completed"},
			{"title": "Read"},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	list := decode[map[string]any](t, w)
	items := list["items"].([]any)
	readID := items[1].(map[string]any)["id"].(string)

	w = do(t, r, http.MethodGet, "/api/v1/analytics/streaks?date=2024-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, w)["todo_streak"])

	w = do(t, r, http.MethodPatch, "/api/v1/todos/2024-03-10/items/"+readID, map[string]any{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/analytics/dashboard?date=2024-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	dash := decode[map[string]any](t, w)
	assert.Equal(t, float64(1), dash["todo_streak"])
	assert.Equal(t, float64(100), dash["daily_completion_rate"])
	assert.Equal(t, "2024-03-10", dash["reference_date"])
	assert.Equal(t, "Every step counts! Let's get started! 🌱", dash["message"])
	assert.Len(t, dash["day_of_week"], 7)

	w = do(t, r, http.MethodGet, "/api/v1/analytics/dashboard?date=2024-03-11", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode[map[string]any](t, w)["todo_streak"])

	w = do(t, r, http.MethodGet, "/api/v1/analytics/todos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(100), decode[map[string]any](t, w)["completion_rate"])
}

func TestAnalytics_BadParameters(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/analytics/dashboard?date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/analytics/todos/trend?days=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/todos/not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/analytics/todos/trend?days=14", nil)
	require.Equal(t, http.StatusOK, w.Code)
	trend := decode[map[string]any](t, w)
	assert.Equal(t, "14d", trend["period"])
}

func TestFinanceOverview(t *testing.T) {
	r := newTestRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/finance/transactions", map[string]any{
		"amount":   "1200.00",
		"type":     "income",
		"category": "Salary",
		"date":     "2024-03-01",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/finance/transactions", map[string]any{
		"amount":   "0",
		"type":     "expense",
		"category": "Food",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, r, http.MethodPut, "/api/v1/finance/bills", map[string]any{
		"name":     "Internet",
		"amount":   "45.50",
		"due_date": "2024-03-14",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/analytics/finance?date=2024-03-10", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	overview := decode[map[string]any](t, w)
	assert.Equal(t, "1200", overview["monthly_income"])
	assert.Len(t, overview["upcoming_bills"], 1)

	w = do(t, r, http.MethodGet, "/api/v1/finance/accounts", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}
