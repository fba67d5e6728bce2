package repl

import (
	"fmt"
	"sort"
	"strings"

	"antenna-workshop/internal/app"
	"antenna-workshop/internal/core"
)

func printStock(result *app.MaterialListResult) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 70))
	fmt.Printf("  %-58s\n", "MATERIAL STOCK")
	fmt.Println(strings.Repeat("=", 70))
	if len(result.Materials) == 0 {
		fmt.Println("  No materials found.")
		fmt.Println(strings.Repeat("=", 70))
		return
	}
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
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-58s\n", "MATERIALS NEEDING ATTENTION")
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-32s %8s %8s %10s %8s\n", "MATERIAL", "STOCK", "REORDER", "STATUS", "SUGGEST")
	fmt.Println(strings.Repeat("-", 78))
	for _, line := range result.Lines {
		fmt.Printf("  %-32s %8d %8d %10s %8d\n",
			line.Material.Name, line.Material.CurrentStock, line.Material.ReorderPoint,
			line.Status, line.SuggestedQty)
	}
	fmt.Println(strings.Repeat("=", 78))
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

func printLog(result *app.ProductionLogResult) {
	if len(result.Records) == 0 {
		fmt.Println("No production recorded yet.")
		return
	}
	fmt.Println()
	fmt.Printf("  %-20s %-32s %8s\n", "WHEN", "PRODUCT", "QTY")
	fmt.Println(strings.Repeat("-", 64))
	for _, r := range result.Records {
		fmt.Printf("  %-20s %-32s %8d\n", r.ProducedAt.Format("2006-01-02 15:04"), r.ProductName, r.Quantity)
	}
}

func printPOList(result *app.PurchaseOrderListResult) {
	if len(result.Orders) == 0 {
		fmt.Println("No purchase orders found.")
		return
	}
	fmt.Println()
	fmt.Printf("  %-4s %-22s %-26s %12s  %s\n", "ID", "PO NUMBER", "SUPPLIER", "TOTAL", "DATE")
	fmt.Println(strings.Repeat("-", 80))
	for _, po := range result.Orders {
		fmt.Printf("  %-4d %-22s %-26s %12s  %s\n",
			po.ID, po.PONumber, po.SupplierName, po.Total.StringFixed(2), po.CreatedAt.Format("2006-01-02"))
	}
}

func printPODetail(po *core.PurchaseOrder) {
	fmt.Println()
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("  PO:        %s\n", po.PONumber)
	fmt.Printf("  Supplier:  %s\n", po.SupplierName)
	fmt.Printf("  Date:      %s\n", po.CreatedAt.Format("2006-01-02"))
	if po.Notes != nil && *po.Notes != "" {
		fmt.Printf("  Notes:     %s\n", *po.Notes)
	}
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("  %-5s %-30s %8s %10s %12s\n", "LINE", "MATERIAL", "QTY", "UNIT COST", "TOTAL")
	fmt.Println(strings.Repeat("-", 78))
	for _, l := range po.Lines {
		fmt.Printf("  %-5d %-30s %8d %10s %12s\n",
			l.LineNumber, l.MaterialName, l.Quantity, l.UnitCost.StringFixed(2), l.LineTotal.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 78))
	fmt.Printf("  %-56s %12s\n", "TOTAL", po.Total.StringFixed(2))
	fmt.Println(strings.Repeat("-", 78))
}

func printCommand(cmd *core.StockCommand) {
	fmt.Printf("\nACTION:     %s\n", cmd.Action)
	fmt.Printf("TARGET:     %s\n", cmd.Target)
	fmt.Printf("QUANTITY:   %d\n", cmd.Quantity)
	fmt.Printf("REASONING:  %s\n", cmd.Reasoning)
	fmt.Printf("CONFIDENCE: %.2f\n", cmd.Confidence)
}

func printHelp() {
	fmt.Println()
	fmt.Println("ANTENNA WORKSHOP COMMANDS")
	fmt.Println(strings.Repeat("=", 62))
	fmt.Println()
	fmt.Println("  STOCK")
	fmt.Println("  /stock                           Material levels and status")
	fmt.Println("  /restock <qty> <material>        Add stock")
	fmt.Println("  /set <value> <material>          Overwrite stock (physical count)")
	fmt.Println()
	fmt.Println("  PRODUCTION")
	fmt.Println("  /produce <qty> <product>         Build units, consuming materials")
	fmt.Println("  /recipes                         List products and their recipes")
	fmt.Println("  /log [n]                         Your recent production events")
	fmt.Println()
	fmt.Println("  PURCHASING")
	fmt.Println("  /reorder                         Materials needing attention")
	fmt.Println("  /pos                             List purchase orders")
	fmt.Println("  /po <id>                         Show a purchase order")
	fmt.Println("  /new-po <supplier>               Create purchase order (interactive)")
	fmt.Println()
	fmt.Println("  REPORTS")
	fmt.Println("  /report [days]                   Production and consumption totals")
	fmt.Println()
	fmt.Println("  SESSION")
	fmt.Println("  /help                            Show this help")
	fmt.Println("  /exit                            Exit")
	fmt.Println()
	fmt.Println("  ASSISTANT MODE  (no / prefix)")
	fmt.Println("  Type any stock instruction in natural language.")
	fmt.Println("  Example: \"we built 5 booster assemblies this morning\"")
	fmt.Println(strings.Repeat("=", 62))
}
