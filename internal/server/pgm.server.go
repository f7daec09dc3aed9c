package server

import (
	"context"
	"log"
	"net/http"

	"program-service/internal/config"
	"program-service/internal/events"
	"program-service/internal/handler"
	"program-service/internal/payments"
	"program-service/internal/repository"
	"program-service/internal/router"
	"program-service/internal/storage"
	"program-service/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Server struct {
	HTTP *http.Server
}

func NewServer(cfg config.AppConfig) *Server {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// --- DB connection ---
	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	// --- Repositories ---
	programRepo := repository.NewProgramRepo(db)
	rewardRepo := repository.NewRewardRepo(db)
	partnerRepo := repository.NewPartnerRepo(db)

	// --- Redis client ---
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	// --- External collaborators ---
	linkCleanup := events.NewLinkCleanupPublisher(rdb, logger)
	stripeClient := payments.NewClient(cfg.StripeAPIURL, cfg.StripeSecretKey, logger)

	assetStore, err := storage.New(context.Background(), storage.Config{
		Region:    cfg.StorageRegion,
		Bucket:    cfg.StorageBucket,
		Endpoint:  cfg.StorageEndpoint,
		BaseURL:   cfg.StorageBaseURL,
		PathStyle: cfg.StoragePathStyle,
	})
	if err != nil {
		log.Fatalf("failed to init asset storage: %v", err)
	}

	// --- Usecases ---
	rewardUC := usecase.NewRewardUsecase(programRepo, rewardRepo, logger)
	partnerUC := usecase.NewPartnerUsecase(partnerRepo, linkCleanup, stripeClient, assetStore, logger)

	// --- Handlers ---
	programHandler := handler.NewProgramHandler(rewardUC, partnerUC)

	// --- HTTP router ---
	r := chi.NewRouter()
	r = router.SetupRoutes(r, programHandler, programRepo, rdb, logger, cfg.CronSecret, cfg.RateLimit).(*chi.Mux)

	// --- HTTP server ---
	httpSrv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	return &Server{
		HTTP: httpSrv,
	}
}

// StartHTTP runs the HTTP server
func (s *Server) StartHTTP() error {
	log.Printf("Program HTTP service listening on %s", s.HTTP.Addr)
	return s.HTTP.ListenAndServe()
}
