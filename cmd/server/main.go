package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"burrito_orders/internal/config"
	"burrito_orders/internal/handlers"
	"burrito_orders/internal/repository"
	"burrito_orders/internal/services"
	"burrito_orders/pkg/sheets"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Load configuration, fail fast on missing backend credentials
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize the spreadsheet backend
	sheetClient, err := sheets.NewClient(ctx, sheets.Config{
		ServiceAccountEmail: cfg.ServiceAccountEmail,
		PrivateKey:          cfg.PrivateKey,
		SpreadsheetID:       cfg.SpreadsheetID,
		Timeout:             cfg.SheetsTimeout,
	})
	if err != nil {
		logger.Fatal("failed to create sheets client", zap.Error(err))
	}

	// Initialize repository, service and handlers
	sheetRepo := repository.NewSheetRepository(sheetClient)
	orderService := services.NewOrderService(sheetRepo, logger)
	orderHandler := handlers.NewOrderHandler(orderService, logger)

	router := handlers.NewRouter(cfg.AllowedOrigin, orderHandler)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.SheetsTimeout + 10*time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown incomplete", zap.Error(err))
	}
}
