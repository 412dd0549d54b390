package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"bakery-pos-api/internal/config"
	"bakery-pos-api/internal/handler"
	"bakery-pos-api/internal/repository"
	"bakery-pos-api/internal/router"
	"bakery-pos-api/internal/service"
	"bakery-pos-api/internal/storage"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Bakery POS API...")

	// Load configuration
	cfg := config.MustLoad()
	log.Printf("Environment: %s", cfg.App.Environment)

	// Select the storage tier: probe the ranked list once and keep the
	// first backend that initializes.
	selection, err := storage.Select(storage.Options{
		Tier:       cfg.Storage.Tier,
		SQLitePath: cfg.Storage.SQLitePath,
		MySQLDSN:   cfg.Storage.MySQLDSN(),
		DataDir:    cfg.Storage.DataDir,
		Redis: storage.RedisConfig{
			Addr:      cfg.Storage.RedisAddress(),
			Password:  cfg.Storage.RedisPassword,
			DB:        cfg.Storage.RedisDB,
			KeyPrefix: cfg.Storage.RedisPrefix,
		},
	})
	if err != nil {
		log.Fatalf("Failed to select storage backend: %v", err)
	}
	log.Printf("Storage tier selected: %s", selection.Tier)

	// Wrap the chosen tier so I/O failures degrade to memory instead of
	// failing record operations.
	fallback := storage.NewFallback(selection.Backend)
	defer fallback.Close()

	// Open the record store; an interrupted multi-record commit is replayed
	// here before any request is served.
	store, err := repository.New(fallback)
	if err != nil {
		log.Fatalf("Failed to open record store: %v", err)
	}
	if store.Recovered() {
		log.Println("Record store recovered an incomplete commit at startup")
	}

	// Initialize services
	inventoryService := service.NewInventoryService(store)
	salesService := service.NewSalesService(store)
	dayService := service.NewDayService(store)
	reportService := service.NewReportService(store)
	backupService := service.NewBackupService(store)
	maintenanceService := service.NewMaintenanceService(store)

	// Initialize handlers
	healthHandler := handler.New(cfg.App.Version, selection.Tier)
	inventoryHandler := handler.NewInventoryHandler(inventoryService)
	salesHandler := handler.NewSalesHandler(salesService, reportService)
	dayHandler := handler.NewDayHandler(dayService)
	backupHandler := handler.NewBackupHandler(backupService)
	adminHandler := handler.NewAdminHandler(maintenanceService, store, selection, fallback)

	// Create router
	r := router.New(router.Config{
		Handler:          healthHandler,
		InventoryHandler: inventoryHandler,
		SalesHandler:     salesHandler,
		DayHandler:       dayHandler,
		BackupHandler:    backupHandler,
		AdminHandler:     adminHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
	fmt.Println("Goodbye!")
}
