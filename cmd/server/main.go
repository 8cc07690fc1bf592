package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/printbridge/backend/config"
	httpDelivery "github.com/printbridge/backend/internal/delivery/http"
	"github.com/printbridge/backend/internal/infrastructure/browser"
	"github.com/printbridge/backend/internal/infrastructure/printavo"
	"github.com/printbridge/backend/internal/logger"
	"github.com/printbridge/backend/internal/usecase"
)

func main() {
	// Local overrides for development; missing .env is fine
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	zlog.Infow("starting printbridge backend",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"printavoBaseURL", cfg.Printavo.BaseURL,
	)

	// Infrastructure dependencies
	renderer := browser.NewRenderer(browser.Options{
		ExecPath:    cfg.Browser.ExecPath,
		UserAgent:   cfg.Browser.UserAgent,
		NavTimeout:  cfg.Browser.NavTimeout,
		SettleDelay: cfg.Browser.SettleDelay,
		Headless:    cfg.Browser.Headless,
	}, zlog)

	printavoClient := printavo.NewClient(cfg.Printavo.BaseURL, cfg.Printavo.RequestsPerSecond)

	// Usecase layer
	importService := usecase.NewImportService(renderer, printavoClient, zlog)

	// HTTP delivery
	handler := httpDelivery.NewHandler(importService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zlog.Infow("server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		zlog.Fatalw("server failed", "err", err)
	}
}
