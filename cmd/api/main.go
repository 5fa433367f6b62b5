package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"agenda/internal/adapters/httpapi"
	"agenda/internal/application"
	"agenda/internal/clock"
	"agenda/internal/config"
	"agenda/internal/infrastructure/database"
	"agenda/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	eventRepo := database.NewEventRepository(pool)
	translator := i18n.NewTranslator(cfg.Locale)
	clk := clock.NewSystem()

	eventSvc := application.NewEventService(eventRepo, clk)
	reportSvc := application.NewReportService(eventRepo, translator, cfg.Locale, clk)
	handler := httpapi.NewHandler(eventSvc, reportSvc, translator, cfg.Locale)

	r := gin.Default()
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsCfg))

	httpapi.SetupRoutes(r, handler)

	log.Printf("api listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
