package main

import (
	"bufio"
	"context"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"antenna-workshop/internal/adapters/cli"
	"antenna-workshop/internal/adapters/repl"
	"antenna-workshop/internal/ai"
	"antenna-workshop/internal/app"
	"antenna-workshop/internal/config"
	"antenna-workshop/internal/core"
	"antenna-workshop/internal/db"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("WORKSHOP_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/example.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer pool.Close()

	factory, err := config.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	catalog, err := core.NewCatalog(factory.Recipes, factory.CompleteUnit)
	if err != nil {
		log.Fatalf("catalog: %v", err)
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
		log.Println("Warning: OPENAI_API_KEY is not set")
	}
	agent := ai.NewAgent(apiKey)

	svc := app.NewAppService(pool, catalog, materials, production, orders, reports, users, advisor, agent)

	if len(os.Args) > 1 {
		cli.Run(ctx, svc, os.Args[1:])
		return
	}

	repl.Run(ctx, svc, bufio.NewReader(os.Stdin), actingUser())
}

func actingUser() int {
	if v := os.Getenv("WORKSHOP_USER_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			return id
		}
	}
	return 1
}
