package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"kin-backend/internal/auth"
	"kin-backend/internal/config"
	"kin-backend/internal/database"
	"kin-backend/internal/db"
	"kin-backend/internal/handlers"
	"kin-backend/internal/health"
	h "kin-backend/internal/http"
	"kin-backend/internal/middleware"
	"kin-backend/internal/repositories"
	"kin-backend/internal/services"
	"kin-backend/internal/storage"
	"kin-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	migrator := database.NewMigrator(pool, migrations.FS)
	if err := migrator.RunMigrations(context.Background()); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	backend, err := storage.New(context.Background(), cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to initialize photo storage: %v", err)
	}
	log.Printf("Photo storage backend: %s", backend.Name())

	jwtManager := auth.NewJWTManager(cfg)

	// Repositories
	userRepo := repositories.NewUserRepository(pool)
	relationRepo := repositories.NewRelationRepository(pool)
	settingsRepo := repositories.NewSettingsRepository(pool)

	// Services
	photoService := services.NewPhotoService(backend)
	userService := services.NewUserService(userRepo, jwtManager, photoService)
	relationService := services.NewRelationService(relationRepo, photoService)
	memoryService := services.NewMemoryService(relationRepo, photoService)
	settingsService := services.NewSettingsService(settingsRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService)
	relationHandler := handlers.NewRelationHandler(relationService, settingsService)
	memoryHandler := handlers.NewMemoryHandler(memoryService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	profileHandler := handlers.NewProfileHandler(userService)
	healthHandler := handlers.NewHealthHandler(health.NewHealthChecker(pool))

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	photoDir := ""
	if cfg.Storage.Backend == "local" || cfg.Storage.Backend == "" {
		photoDir = cfg.Storage.LocalDir
	}

	router := h.NewRouter(
		authHandler,
		relationHandler,
		memoryHandler,
		settingsHandler,
		profileHandler,
		healthHandler,
		authMiddleware,
		photoDir,
	)
	handler := corsMiddleware(router)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
