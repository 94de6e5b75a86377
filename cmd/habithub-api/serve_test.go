package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonnyWalker81/habithub/backend/internal/config"
	"github.com/JonnyWalker81/habithub/backend/internal/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server:    config.ServerConfig{Port: "0", Env: "test"},
		Store:     config.StoreConfig{Driver: config.DriverSQLite, SQLitePath: filepath.Join(t.TempDir(), "habithub.db")},
		Analytics: config.AnalyticsConfig{Timezone: "UTC", TrendDays: 7},
		Log:       config.LogConfig{Level: "error", Format: "text"},
		Metrics:   config.MetricsConfig{Enabled: true, Namespace: "habithub"},
	}
}

func TestRouter_HealthAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)

	a, err := newApp(cfg, newLogger(cfg))
	require.NoError(t, err)
	t.Cleanup(func() { a.close() })

	router := newRouter(a)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"store":"sqlite"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "habithub_analytics_computation_duration_seconds")
	assert.Contains(t, body, `habithub_http_requests_total{method="GET",route="/api/v1/analytics/dashboard",status="200"} 1`)
}

func TestRouter_MetricsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.Metrics.Enabled = false

	a, err := newApp(cfg, newLogger(cfg))
	require.NoError(t, err)
	t.Cleanup(func() { a.close() })

	w := httptest.NewRecorder()
	newRouter(a).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	dashboard := &models.Dashboard{
		ReferenceDate:   models.NewDate(2024, 3, 10),
		OverallProgress: 80,
		Band:            models.BandNearComplete,
		GoalStreak:      3,
		Categories:      []models.CategorySummary{{Category: "Health", TotalGoals: 2, CompletedGoals: 1, Progress: 80}},
	}
	require.NoError(t, printDashboard(&buf, dashboard))

	overview := &models.FinanceOverview{
		MonthlyIncome: decimal.NewFromInt(1250),
		MonthlyNet:    decimal.NewFromInt(-20),
		UpcomingBills: []models.Bill{{Name: "Rent", Amount: decimal.NewFromInt(900), DueDate: models.NewDate(2024, 3, 12)}},
	}
	require.NoError(t, printFinance(&buf, overview, "ZMW"))

	out := buf.String()
	assert.Contains(t, out, "2024-03-10")
	assert.Contains(t, out, "You're almost there!")
	assert.Contains(t, out, "Health")
	assert.Contains(t, out, "ZMW 1,250.00")
	assert.True(t, strings.Contains(out, "Rent"))
}
