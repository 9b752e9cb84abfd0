package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"attendo/internal/adapters/httpapi"
	"attendo/internal/application"
	"attendo/internal/config"
	"attendo/internal/infrastructure/cache"
	"attendo/internal/infrastructure/database"
	"attendo/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error de configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Error al inicializar la base de datos: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Error al aplicar las migraciones: %v", err)
	}

	participantRepo := database.NewParticipantRepository(pool)
	eventRepo := database.NewEventRepository(pool)
	attendanceRepo := database.NewAttendanceRepository(pool)

	store := cache.NewStore()
	ttl := application.CacheTTL{
		List:   cfg.CacheListTTL,
		Entity: cfg.CacheEntityTTL,
		Stats:  cfg.CacheStatsTTL,
	}

	participantService := application.NewParticipantService(participantRepo, store, ttl)
	eventService := application.NewEventService(eventRepo, store, ttl)
	attendanceService := application.NewAttendanceService(participantRepo, eventRepo, attendanceRepo, store, ttl)

	translator := i18n.NewTranslator(cfg.DefaultLocale)
	server := httpapi.NewServer(translator, participantService, eventService, attendanceService)

	log.Printf("🚀 Servidor escuchando en %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, server.Handler()); err != nil {
		log.Printf("❌ Error del servidor HTTP: %v", err)
		os.Exit(1)
	}
}
