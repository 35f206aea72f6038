package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rcastano/creator-store/internal/adapter/handler"
	"github.com/rcastano/creator-store/internal/adapter/storage"
	"github.com/rcastano/creator-store/internal/config"
	"github.com/rcastano/creator-store/internal/core/service"
	"github.com/rcastano/creator-store/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logg.Sync()

	// Catalog is static configuration: loaded once, immutable afterwards.
	catalog, err := storage.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		logg.Fatal("failed to load catalog", "path", cfg.CatalogPath, "error", err)
	}
	logg.Info("catalog loaded",
		"path", cfg.CatalogPath,
		"products", len(catalog.Products()),
		"videos", len(catalog.Videos()),
		"plans", len(catalog.Plans()),
		"currency", catalog.Currency().String(),
	)

	sessions := storage.NewSessionStore()

	cartService := service.NewCartService(catalog, sessions)
	checkoutService := service.NewCheckoutService(catalog, sessions)
	membershipService := service.NewMembershipService(sessions)

	httpHandler := handler.NewHTTPHandler(catalog, cartService, checkoutService, membershipService)
	router := handler.NewRouter(httpHandler, logg, cfg.CORSOrigins)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logg.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logg.Error("HTTP server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down", "sessions", sessions.Len())

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logg.Error("HTTP server shutdown error", "error", err)
	}
	logg.Info("HTTP server stopped")
}
