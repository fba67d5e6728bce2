package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	webAdapter "antenna-workshop/internal/adapters/web"
	"antenna-workshop/internal/ai"
	"antenna-workshop/internal/app"
	"antenna-workshop/internal/config"
	"antenna-workshop/internal/core"
	"antenna-workshop/internal/db"
	"antenna-workshop/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("WORKSHOP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/example.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)

	if err := db.Migrate(cfg.Postgres.DSN, "migrations"); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("database connect failed", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	factory, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Error("catalog load failed", "path", cfg.Catalog.Path, "error", err)
		os.Exit(1)
	}
	catalog, err := core.NewCatalog(factory.Recipes, factory.CompleteUnit)
	if err != nil {
		log.Error("catalog invalid", "error", err)
		os.Exit(1)
	}
	if n, err := core.SeedMaterials(ctx, pool, factory.Materials); err != nil {
		log.Error("material seeding failed", "error", err)
		os.Exit(1)
	} else if n > 0 {
		log.Info("seeded catalog materials", "count", n)
	}

	materials := core.NewMaterialService(pool)
	production := core.NewProductionService(pool, catalog, materials)
	orders := core.NewPurchaseOrderService(pool)
	reports := core.NewReportingService(pool)
	users := core.NewUserService(pool)
	advisor := core.NewReorderAdvisor(pool, core.ReorderPolicy{
		AttentionFactor: cfg.Reorder.AttentionFactor,
		TargetFactor:    cfg.Reorder.TargetFactor,
	})

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Warn("OPENAI_API_KEY is not set, assistant endpoints disabled")
	}
	agent := ai.NewAgent(apiKey)

	svc := app.NewAppService(pool, catalog, materials, production, orders, reports, users, advisor, agent)

	handler := webAdapter.NewHandler(svc, webAdapter.Options{
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		JWTSecret:      cfg.Auth.JWTSecret,
		TokenTTL:       time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		ExposeMetrics:  cfg.Metrics.Enabled,
		Log:            log,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
