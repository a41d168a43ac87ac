package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"eventboard/config"
	_ "eventboard/docs"
	delivery "eventboard/internal/delivery/http"
	"eventboard/internal/delivery/http/controllers"
	"eventboard/internal/delivery/http/middleware"
	"eventboard/internal/repository/slot"
	"eventboard/internal/services"
	"eventboard/internal/store"
)

// @title Eventboard API
// @version 1.0
// @description Event listing and management service backed by a local key-value slot store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	logger := config.NewLogger()

	kv, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}
	defer closeStore()

	userRepo := slot.NewUserRepository(kv)
	eventRepo := slot.NewEventRepository(kv)
	prefRepo := slot.NewPreferenceRepository(kv)
	sessions := slot.NewSessionManager(kv)

	userService := services.NewUserService(userRepo, sessions)
	eventService := services.NewEventService(eventRepo)
	prefService := services.NewPreferenceService(prefRepo)
	statsService := services.NewStatsService(userRepo, eventRepo)

	authController := controllers.NewAuthController(logger, userService, sessions)
	eventController := controllers.NewEventController(logger, eventService)
	prefController := controllers.NewPreferenceController(logger, prefService)
	dashController := controllers.NewDashboardController(logger, eventService, statsService)

	mux := delivery.NewRouter(sessions, authController, eventController, prefController, dashController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "port", cfg.Port, "store", cfg.StoreDriver, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// openStore builds the slot store named by config. The returned func closes
// the underlying handle, if any.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	if cfg.StoreDriver == "memory" {
		return store.NewMemoryStore(), func() {}, nil
	}

	driver := "sqlite"
	if cfg.StoreDriver == "postgres" {
		driver = "postgres"
	}
	db, err := sql.Open(driver, cfg.StoreDSN)
	if err != nil {
		return nil, nil, err
	}
	sqlStore := store.NewSQLStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := sqlStore.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, err
	}
	return sqlStore, func() { db.Close() }, nil
}
