package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/enapu/yard-backend/config"
	"github.com/enapu/yard-backend/database"
	"github.com/enapu/yard-backend/router"
	"github.com/enapu/yard-backend/seeders"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to load configuration: %v", err)
	}
	utils.InitLogger(cfg.LogLevel, cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	db, err := database.Open(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}

	if cfg.SeedOnStart {
		hasher := utils.NewPasswordHasher(cfg.PasswordHasher, cfg.PBKDF2Iter)
		summary, err := seeders.Seed(context.Background(), db, hasher)
		if err != nil {
			utils.ErrorLogger.Fatalf("Failed to seed database: %v", err)
		}
		utils.InfoLogger.WithField("created", summary.Total()).Info("Seed completed.")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router.SetupRouter(db, cfg),
	}

	go func() {
		utils.InfoLogger.WithFields(logrus.Fields{
			"port":   cfg.Port,
			"driver": cfg.DBDriver,
			"prefix": cfg.APIPrefix,
		}).Info("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		utils.ErrorLogger.Errorf("Shutting down HTTP server: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	utils.InfoLogger.Info("HTTP server gracefully stopped")
}
