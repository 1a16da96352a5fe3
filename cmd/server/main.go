package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emreglvibecoder/darth-vader-api/internal/config"
	"github.com/emreglvibecoder/darth-vader-api/internal/database"
	"github.com/emreglvibecoder/darth-vader-api/internal/logger"
	"github.com/emreglvibecoder/darth-vader-api/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // load .env if present

	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.AppName, cfg.Env, cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Open(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to access database pool: %v", err)
	}
	defer sqlDB.Close()

	// Create tables if absent
	if err := database.Migrate(db, log); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	r, err := router.New(router.Dependencies{
		Config: cfg,
		Logger: log,
		DB:     db,
	})
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}
	if cfg.TokenMode == config.TokenModeUsername {
		log.Warn("AUTH_TOKEN_MODE=username: bearer tokens are plain usernames; use jwt outside local development")
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		log.Infof("Server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}
}
