package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/pageza/fitsync-pro/backend/config"
	"github.com/pageza/fitsync-pro/backend/internal/api"
	"github.com/pageza/fitsync-pro/backend/internal/database"
	"github.com/pageza/fitsync-pro/backend/internal/metrics"
	"github.com/pageza/fitsync-pro/backend/internal/middleware"
	"github.com/pageza/fitsync-pro/backend/internal/router"
	"github.com/pageza/fitsync-pro/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	redis  *redis.Client
}

// New connects the database and optional backends and wires every service
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	gin.SetMode(config.GetEnvironment().GinMode())

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	var (
		redisClient *redis.Client
		limiter     *middleware.RateLimiter
	)
	if cfg.RedisEnabled() {
		redisClient, err = database.NewRedisClient(cfg)
		if err != nil {
			// Continue without rate limiting if Redis is not available
			log.Printf("Warning: Failed to connect to Redis for rate limiting: %v", err)
			redisClient = nil
		} else {
			limiter = middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimitPerHour, recorder)
		}
	}

	var archiver service.PlanArchiver
	if cfg.ArchiveEnabled() {
		s3Config, err := config.NewS3Config(ctx, cfg)
		if err != nil {
			log.Printf("Warning: Failed to configure S3, plan archiving disabled: %v", err)
		} else {
			archiver = service.NewS3Archiver(s3Config)
		}
	}

	var geminiOpts []service.GeminiOption
	if cfg.GeminiBaseURL != "" {
		geminiOpts = append(geminiOpts, service.WithBaseURL(cfg.GeminiBaseURL))
	}
	gemini := service.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, geminiOpts...)
	llm := service.NewLLMService(gemini, recorder)

	svc := api.Services{
		DB:          db,
		Auth:        service.NewAuthService(db, cfg.JWTSecret),
		Profiles:    service.NewProfileService(db),
		Plans:       service.NewPlanService(db, llm, archiver, recorder),
		Chat:        service.NewChatService(db, llm),
		Models:      llm,
		RateLimiter: limiter,
	}

	log.Printf("Using Gemini model %s", cfg.GeminiModel)

	engine := router.SetupRouter(svc, reg, cfg.AllowedOrigins)

	return &Server{
		cfg:    cfg,
		router: engine,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		db:    db,
		redis: redisClient,
	}, nil
}

// Handler returns the configured router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves HTTP until Shutdown is called
func (s *Server) Start() error {
	log.Printf("Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server and closes the backends
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	errs := []error{s.http.Shutdown(ctx)}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if sqlDB, err := s.db.DB(); err == nil {
		errs = append(errs, sqlDB.Close())
	}
	return errors.Join(errs...)
}
