package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	_ "github.com/saulo-duarte/goals-api/docs"
	"github.com/saulo-duarte/goals-api/internal/config"
	"github.com/saulo-duarte/goals-api/internal/database"
	"github.com/saulo-duarte/goals-api/internal/goal"
	"github.com/saulo-duarte/goals-api/internal/middlewares"
	"github.com/saulo-duarte/goals-api/internal/task"
)

type RouterConfig struct {
	GoalHandler    *goal.Handler
	TaskHandler    *task.Handler
	DB             *gorm.DB
	AllowedOrigins []string
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.Logger)
	r.Use(middlewares.Metrics)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/readyz", readiness(cfg.DB))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/goals", goal.Routes(cfg.GoalHandler))
	r.Mount("/tasks", task.Routes(cfg.TaskHandler))

	return r
}

func readiness(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), time.Second)
		defer cancel()

		if err := database.Ping(ctx, db); err != nil {
			config.WithContext(r.Context()).WithError(err).Warn("Database not ready")
			config.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db_not_ready"})
			return
		}
		config.JSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}
