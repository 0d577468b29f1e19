package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/api"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/config"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/db"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/services"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/settlement"
	"github.com/ananyaa-sutaria/ThinkPink-sub000/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	time.Local = cfg.Location

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()

	var photos storage.PhotoStore
	if cfg.R2Configured() {
		photos, err = storage.NewR2PhotoStore(lifecycleCtx, storage.R2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
			Bucket:          cfg.R2Bucket,
			CDNBaseURL:      cfg.CDNBaseURL,
		})
		if err != nil {
			log.Fatalf("photo store init failed: %v", err)
		}
	} else {
		log.Println("R2 credentials not set, donation photo uploads disabled")
	}

	settle := settlement.NewClient(cfg.SettlementURL, cfg.SettlementToken)
	handler := api.NewHandler(database, cfg.SecretKey, cfg.AdminToken, cfg.Location, settle, photos)

	app := fiber.New(fiber.Config{
		AppName:               "ThinkPink",
		DisableStartupMessage: true,
		BodyLimit:             10 * 1024 * 1024,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New())

	api.RegisterRoutes(app, handler)

	if _, err := services.StartSettlementSweeper(lifecycleCtx, handler.Donations(), cfg.SweepInterval); err != nil {
		log.Fatalf("settlement sweeper init failed: %v", err)
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("ThinkPink listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, cfg.Location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
