package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"antenna-workshop/internal/app"
)

// handleNewPO runs an interactive purchase order creation session.
func handleNewPO(ctx context.Context, reader *bufio.Reader, svc app.ApplicationService, supplier string, userID int) {
	fmt.Printf("Creating purchase order for supplier: %s\n", supplier)
	fmt.Println("Enter order lines. Type 'done' when finished, 'cancel' to abort.")
	fmt.Println("Format per line: <quantity> <material name>")
	fmt.Println("  Example: 100 Resistor 1k")

	var lines []app.POLineInput
	lineNum := 1
	for {
		fmt.Printf("  Line %d: ", lineNum)
		raw, _ := reader.ReadString('\n')
		raw = strings.TrimSpace(raw)
		if strings.ToLower(raw) == "cancel" {
			fmt.Println("Purchase order cancelled.")
			return
		}
		if strings.ToLower(raw) == "done" {
			break
		}
		if raw == "" {
			continue
		}

		parts := strings.Fields(raw)
		if len(parts) < 2 {
			fmt.Println("  Invalid format. Use: <quantity> <material name>")
			continue
		}

		qty, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil || qty <= 0 {
			fmt.Println("  Invalid quantity.")
			continue
		}

		lines = append(lines, app.POLineInput{
			MaterialName: strings.Join(parts[1:], " "),
			Quantity:     qty,
		})
		lineNum++
	}

	if len(lines) == 0 {
		fmt.Println("No lines entered. Purchase order not created.")
		return
	}

	fmt.Print("Notes (optional): ")
	notes, _ := reader.ReadString('\n')
	notes = strings.TrimSpace(notes)

	result, err := svc.CreatePurchaseOrder(ctx, app.CreatePORequest{
		SupplierName: supplier,
		Notes:        notes,
		UserID:       userID,
		Lines:        lines,
	})
	if err != nil {
		fmt.Printf("[REPL] Error creating purchase order: %v\n", err)
		return
	}

	fmt.Printf("\nPurchase order created: %s\n", result.Order.PONumber)
	printPODetail(result.Order)
	fmt.Println("Use '/po " + strconv.Itoa(result.Order.ID) + "' to review it later.")
}
