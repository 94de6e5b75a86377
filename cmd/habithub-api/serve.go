package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/JonnyWalker81/habithub/backend/internal/apierror"
	"github.com/JonnyWalker81/habithub/backend/internal/config"
	"github.com/JonnyWalker81/habithub/backend/internal/handlers"
	"github.com/JonnyWalker81/habithub/backend/internal/logger"
	"github.com/JonnyWalker81/habithub/backend/internal/metrics"
	"github.com/JonnyWalker81/habithub/backend/internal/middleware"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if port != "" {
		cfg.Server.Port = port
	}

	log := newLogger(cfg)
	log.Info("Starting HabitHub API server",
		logger.String("env", cfg.Server.Env),
		logger.String("store", cfg.Store.Driver),
	)

	a, err := newApp(cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := newRouter(a)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("Listening", logger.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newRouter(a *app) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(a.log))
	router.Use(middleware.Logger(a.httpMetrics))
	router.Use(middleware.CORS(a.cfg.CORS.AllowedOrigins))
	router.Use(middleware.SecurityHeaders(a.cfg.IsProduction()))

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := a.ping(ctx); err != nil {
			logger.Ctx(c.Request.Context()).Warn("health check failed", logger.Err(err))
			apierror.WriteProblem(c, apierror.NewServiceUnavailableError(apierror.GetRequestID(c), 5))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    a.cfg.Server.Env,
			"store":  a.cfg.Store.Driver,
		})
	})

	if a.registry != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(a.registry)))
	}

	v1 := router.Group("/api/v1")
	handlers.NewGoalHandler(a.goalService).Register(v1)
	handlers.NewTodoHandler(a.todoService).Register(v1)
	handlers.NewFinanceHandler(a.financeService).Register(v1)
	handlers.NewAnalyticsHandler(a.analyticsService, a.cfg.Analytics.TrendDays).Register(v1)

	return router
}
