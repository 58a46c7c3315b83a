package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"hbnb/internal/cache"
	"hbnb/internal/config"
	"hbnb/internal/controllers"
	"hbnb/internal/jwt"
	"hbnb/internal/logger"
	"hbnb/internal/middleware"
	"hbnb/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init("hbnb", cfg.Env, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional; without it logout cannot revoke tokens
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		c, err := cache.NewRedisCache(cfg.RedisURL, "hbnb:")
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to Redis, continuing without token revocation")
		} else {
			log.Info().Msg("Connected to Redis cache")
			cacheClient = c
		}
	}

	// Storage lives for the lifetime of the process
	facade := service.NewHBnBFacade(service.NewInMemoryStores(), log.Logger)

	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTL)*time.Hour,
	)
	authService := service.NewAuthService(facade, jwtService, cache.NewTokenDenylist(cacheClient), log.Logger)

	generalRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	authRateLimiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitAuthRPS), cfg.RateLimitAuthBurst)
	defer generalRateLimiter.Stop()
	defer authRateLimiter.Stop()

	router := controllers.NewRouter(controllers.RouterDeps{
		Facade:         facade,
		AuthService:    authService,
		FrontendURL:    cfg.FrontendURL,
		AllowedOrigins: cfg.AllowedOrigins,
		GeneralLimiter: generalRateLimiter,
		AuthLimiter:    authRateLimiter,
		Logger:         log.Logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}
	if cacheClient != nil {
		if err := cacheClient.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis connection")
		}
	}

	log.Info().Msg("Server stopped")
}
