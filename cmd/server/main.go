package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"workshop-invoicing-backend/internal/config"
	"workshop-invoicing-backend/internal/logging"
	"workshop-invoicing-backend/internal/metrics"
	"workshop-invoicing-backend/internal/repository"
	"workshop-invoicing-backend/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load config (.env is picked up by config.Load)
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").WithError(err).Fatal("failed to load config")
	}
	log := logging.New(cfg.LogLevel)

	// 2. Setup database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if cfg.AutoMigrate {
		if err := repository.Migrate(db); err != nil {
			log.WithError(err).Fatal("failed to migrate database")
		}
	}

	// 3. Setup router
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), logging.RequestLogger(log), metrics.Instrument())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	loginLimiter := routes.RegisterRoutes(r, db, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go loginLimiter.Run(ctx, time.Minute)

	// 4. Run server with graceful shutdown
	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.WithField("port", cfg.ServerPort).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exiting")
}
