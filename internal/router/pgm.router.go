package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"program-service/internal/handler"
	"program-service/internal/middleware"
)

func SetupRoutes(
	r chi.Router,
	h *handler.ProgramHandler,
	workspaces middleware.WorkspaceStore,
	rdb *redis.Client,
	logger *zap.Logger,
	cronSecret string,
	rateLimit int64,
) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Cron-Secret"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false, // must be false when using "*"
		MaxAge:           300,
	}))

	// ---- Mount all routes under /program/svc ----
	r.Route("/program/svc", func(pr chi.Router) {

		// ---- Public routes ----
		pr.Group(func(pub chi.Router) {
			pub.Get("/health", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("ok"))
			})
		})

		// ---- Workspace-authenticated routes ----
		pr.Group(func(priv chi.Router) {
			priv.Use(middleware.RequireWorkspace(workspaces, logger))
			priv.Use(middleware.WorkspaceRateLimit(rdb, logger, rateLimit))

			priv.Post("/rewards/create", h.CreateReward)
			priv.Get("/rewards/get", h.ListRewards)
		})

		// ---- Cron/maintenance routes ----
		pr.Group(func(cron chi.Router) {
			cron.Use(middleware.RequireCronSecret(cronSecret, logger))

			cron.Delete("/cron/partners/{id}", h.DeletePartner)
		})
	})

	return r
}
