package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"antenna-workshop/internal/app"
	"antenna-workshop/internal/core"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
// Mutating commands act as the user named in WORKSHOP_USER_ID (default 1,
// the seeded admin) since the CLI runs inside the workshop LAN.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	userID := actingUser()

	switch args[0] {
	case "stock", "st":
		result, err := svc.ListMaterials(ctx)
		if err != nil {
			log.Fatalf("Failed to load materials: %v", err)
		}
		printStock(result)

	case "produce", "prod", "p":
		if len(args) < 3 {
			log.Fatal("Usage: app produce \"<product name>\" <qty>")
		}
		qty := parseQty(args[2])
		result, err := svc.Produce(ctx, app.ProduceRequest{ProductName: args[1], Quantity: qty, UserID: userID})
		if err != nil {
			log.Fatalf("Production failed: %v", err)
		}
		if result.Record == nil {
			fmt.Println("Nothing to do.")
			return
		}
		fmt.Printf("Produced %d x %s\n", result.Record.Quantity, result.Record.ProductName)
		for _, m := range result.Materials {
			fmt.Printf("  %-30s %6d %s\n", m.Name, m.CurrentStock, m.Unit)
		}

	case "restock", "r":
		if len(args) < 3 {
			log.Fatal("Usage: app restock \"<material name>\" <qty>")
		}
		qty := parseQty(args[2])
		result, err := svc.Restock(ctx, app.StockChangeRequest{MaterialName: args[1], Quantity: qty, UserID: userID})
		if err != nil {
			log.Fatalf("Restock failed: %v", err)
		}
		m := result.Material
		fmt.Printf("%s: %d %s (%s)\n", m.Name, m.CurrentStock, m.Unit, m.Status)

	case "set":
		if len(args) < 3 {
			log.Fatal("Usage: app set \"<material name>\" <value>")
		}
		value, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			log.Fatalf("Invalid value: %s", args[2])
		}
		result, err := svc.SetStock(ctx, app.StockChangeRequest{MaterialName: args[1], Quantity: value, UserID: userID})
		if err != nil {
			log.Fatalf("Set stock failed: %v", err)
		}
		m := result.Material
		fmt.Printf("%s: %d %s (%s)\n", m.Name, m.CurrentStock, m.Unit, m.Status)

	case "recipes", "rec":
		result, err := svc.ListProducts(ctx)
		if err != nil {
			log.Fatalf("Failed to load products: %v", err)
		}
		for _, product := range result.Products {
			recipe, err := svc.GetRecipe(ctx, product)
			if err != nil {
				log.Fatalf("Failed to load recipe for %q: %v", product, err)
			}
			printRecipe(recipe)
		}

	case "reorder", "ro":
		result, err := svc.ReorderReport(ctx)
		if err != nil {
			log.Fatalf("Failed to build reorder report: %v", err)
		}
		printReorder(result)

	case "report":
		days := 30
		if len(args) >= 2 {
			days = int(parseQty(args[1]))
		}
		summary, err := svc.ProductionSummary(ctx, days)
		if err != nil {
			log.Fatalf("Failed to build production summary: %v", err)
		}
		usage, err := svc.MaterialUsage(ctx, days)
		if err != nil {
			log.Fatalf("Failed to build material usage: %v", err)
		}
		printReports(summary, usage)

	case "po":
		runPO(ctx, svc, userID, args[1:])

	case "ask":
		if len(args) < 2 {
			log.Fatal("Usage: app ask \"<instruction>\"")
		}
		result, err := svc.InterpretCommand(ctx, args[1])
		if err != nil {
			log.Fatalf("Assistant error: %v", err)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result.Command)

	case "apply":
		var cmd core.StockCommand
		if err := json.NewDecoder(os.Stdin).Decode(&cmd); err != nil {
			log.Fatalf("Invalid JSON: %v", err)
		}
		outcome, err := svc.ExecuteCommand(ctx, cmd, userID)
		if err != nil {
			log.Fatalf("Command failed: %v", err)
		}
		fmt.Println(outcome.Message)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: stock, produce, restock, set, recipes, reorder, report, po, ask, apply", args[0])
	}
}

// runPO handles the "po" subcommand group: list, show, create, export.
func runPO(ctx context.Context, svc app.ApplicationService, userID int, args []string) {
	if len(args) == 0 {
		args = []string{"list"}
	}

	switch args[0] {
	case "list":
		result, err := svc.ListPurchaseOrders(ctx, 20)
		if err != nil {
			log.Fatalf("Failed to list purchase orders: %v", err)
		}
		for _, po := range result.Orders {
			fmt.Printf("  %-4d %-22s %-24s %12s\n", po.ID, po.PONumber, po.SupplierName, po.Total.StringFixed(2))
		}

	case "show":
		if len(args) < 2 {
			log.Fatal("Usage: app po show <id>")
		}
		id := int(parseQty(args[1]))
		result, err := svc.GetPurchaseOrder(ctx, id)
		if err != nil {
			log.Fatalf("Failed to load purchase order: %v", err)
		}
		printPurchaseOrder(result.Order)

	case "create":
		// Lines come as "Material=Qty" pairs after the supplier name.
		if len(args) < 3 {
			log.Fatal("Usage: app po create \"<supplier>\" \"<material>=<qty>\" ...")
		}
		var lines []app.POLineInput
		for _, pair := range args[2:] {
			name, qtyStr, ok := strings.Cut(pair, "=")
			if !ok {
				log.Fatalf("Invalid line %q, expected <material>=<qty>", pair)
			}
			lines = append(lines, app.POLineInput{MaterialName: name, Quantity: parseQty(qtyStr)})
		}
		result, err := svc.CreatePurchaseOrder(ctx, app.CreatePORequest{
			SupplierName: args[1],
			UserID:       userID,
			Lines:        lines,
		})
		if err != nil {
			log.Fatalf("Failed to create purchase order: %v", err)
		}
		printPurchaseOrder(result.Order)

	case "export":
		if len(args) < 2 {
			log.Fatal("Usage: app po export <id>")
		}
		id := int(parseQty(args[1]))
		result, err := svc.PurchaseOrderWorkbook(ctx, id)
		if err != nil {
			log.Fatalf("Failed to render workbook: %v", err)
		}
		if err := os.WriteFile(result.Filename, result.Data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", result.Filename, err)
		}
		fmt.Printf("Wrote %s\n", result.Filename)

	default:
		log.Fatalf("Unknown po command: %s\nAvailable: list, show, create, export", args[0])
	}
}

func actingUser() int {
	if v := os.Getenv("WORKSHOP_USER_ID"); v != "" {
		if id, err := strconv.Atoi(v); err == nil && id > 0 {
			return id
		}
	}
	return 1
}

func parseQty(s string) int64 {
	qty, err := strconv.ParseInt(s, 10, 64)
	if err != nil || qty <= 0 {
		log.Fatalf("Invalid quantity: %s", s)
	}
	return qty
}

func printStock(result *app.MaterialListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  %-58s\n", "MATERIAL STOCK")
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  %-32s %10s %8s %10s\n", "MATERIAL", "STOCK", "UNIT", "STATUS")
	fmt.Println(strings.Repeat("-", 70))
	for _, m := range result.Materials {
		fmt.Printf("  %-32s %10d %8s %10s\n", m.Name, m.CurrentStock, m.Unit, m.Status)
	}
	fmt.Println(strings.Repeat("=", 70))
}

func printRecipe(result *app.RecipeResult) {
	fmt.Printf("\n%s\n", result.ProductName)
	names := make([]string, 0, len(result.Recipe))
	for name := range result.Recipe {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-32s x%d\n", name, result.Recipe[name])
	}
}

func printReorder(result *app.ReorderResult) {
	if len(result.Lines) == 0 {
		fmt.Println("All materials are sufficiently stocked.")
		return
	}
	fmt.Println()
	fmt.Printf("  %-32s %10s %10s %10s %10s\n", "MATERIAL", "STOCK", "REORDER", "STATUS", "SUGGEST")
	fmt.Println(strings.Repeat("-", 78))
	for _, line := range result.Lines {
		fmt.Printf("  %-32s %10d %10d %10s %10d\n",
			line.Material.Name, line.Material.CurrentStock, line.Material.ReorderPoint, line.Status, line.SuggestedQty)
	}
}

func printReports(summary *app.ProductionSummaryResult, usage *app.MaterialUsageResult) {
	fmt.Printf("\nProduction, last %d days:\n", summary.Days)
	if len(summary.Lines) == 0 {
		fmt.Println("  (none)")
	}
	for _, l := range summary.Lines {
		fmt.Printf("  %-32s %10d\n", l.ProductName, l.TotalQty)
	}
	fmt.Printf("\nMaterial consumption, last %d days:\n", usage.Days)
	if len(usage.Lines) == 0 {
		fmt.Println("  (none)")
	}
	for _, l := range usage.Lines {
		fmt.Printf("  %-32s %10d %s\n", l.MaterialName, l.TotalUsed, l.Unit)
	}
}

func printPurchaseOrder(po *core.PurchaseOrder) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %s — %s\n", po.PONumber, po.SupplierName)
	if po.Notes != nil && *po.Notes != "" {
		fmt.Printf("  Notes: %s\n", *po.Notes)
	}
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("  %-3s %-30s %8s %8s %10s %12s\n", "#", "MATERIAL", "UNIT", "QTY", "COST", "TOTAL")
	for _, l := range po.Lines {
		fmt.Printf("  %-3d %-30s %8s %8d %10s %12s\n",
			l.LineNumber, l.MaterialName, l.Unit, l.Quantity, l.UnitCost.StringFixed(2), l.LineTotal.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("  %-62s %12s\n", "TOTAL", po.Total.StringFixed(2))
	fmt.Println(strings.Repeat("=", 78))
}
