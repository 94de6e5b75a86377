package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/JonnyWalker81/habithub/backend/internal/analytics"
	"github.com/JonnyWalker81/habithub/backend/internal/config"
	"github.com/JonnyWalker81/habithub/backend/internal/logger"
	"github.com/JonnyWalker81/habithub/backend/internal/metrics"
	"github.com/JonnyWalker81/habithub/backend/internal/repository"
	"github.com/JonnyWalker81/habithub/backend/internal/repository/sqlite"
	"github.com/JonnyWalker81/habithub/backend/internal/service"
	"github.com/JonnyWalker81/habithub/backend/pkg/supabase"
)

// app holds the wired services shared by the serve and report commands
type app struct {
	cfg *config.Config
	log logger.Logger

	goalService      service.GoalService
	todoService      service.TodoService
	financeService   service.FinanceService
	analyticsService service.AnalyticsService

	registry    *prometheus.Registry
	httpMetrics *metrics.HTTPMetrics

	ping  func(context.Context) error
	close func() error
}

func newLogger(cfg *config.Config) logger.Logger {
	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)
	return log
}

func newApp(cfg *config.Config, log logger.Logger) (*app, error) {
	a := &app{cfg: cfg, log: log}

	var (
		goalRepo    repository.GoalRepository
		todoRepo    repository.TodoListRepository
		financeRepo repository.FinanceRepository
	)

	switch cfg.Store.Driver {
	case config.DriverSupabase:
		client := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
		goalRepo = repository.NewGoalRepository(client)
		todoRepo = repository.NewTodoListRepository(client)
		financeRepo = repository.NewFinanceRepository(client)
		a.ping = func(ctx context.Context) error {
			_, err := client.Query(ctx, "goals", map[string]interface{}{"select": "id", "limit": 1})
			return err
		}
		a.close = func() error { return nil }
		log.Info("Using Supabase store", logger.String("url", cfg.Supabase.URL))
	default:
		store, err := sqlite.Open(cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		goalRepo = sqlite.NewGoalRepository(store)
		todoRepo = sqlite.NewTodoListRepository(store)
		financeRepo = sqlite.NewFinanceRepository(store)
		a.ping = store.Ping
		a.close = store.Close
		log.Info("Using SQLite store", logger.String("path", cfg.Store.SQLitePath))
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	engine := analytics.NewEngine(analytics.WithLocation(loc))

	var opts []service.AnalyticsOption
	if len(cfg.Analytics.Categories) > 0 {
		opts = append(opts, service.WithCategories(cfg.Analytics.Categories))
	}

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		observer, err := metrics.NewPrometheusObserver(cfg.Metrics.Namespace, a.registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register analytics metrics: %w", err)
		}
		opts = append(opts, service.WithObserver(observer))

		a.httpMetrics, err = metrics.NewHTTPMetrics(cfg.Metrics.Namespace, a.registry)
		if err != nil {
			return nil, fmt.Errorf("failed to register http metrics: %w", err)
		}
	}

	a.goalService = service.NewGoalService(goalRepo, engine)
	a.todoService = service.NewTodoService(todoRepo, engine)
	a.financeService = service.NewFinanceService(financeRepo, engine)
	a.analyticsService = service.NewAnalyticsService(goalRepo, todoRepo, financeRepo, engine, opts...)

	return a, nil
}
