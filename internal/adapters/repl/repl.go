package repl

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"antenna-workshop/internal/app"
)

// Run starts the interactive REPL loop.
// It reads commands from reader, dispatches slash commands deterministically,
// and routes natural language input through the AI assistant.
// userID is the acting identity recorded on every mutation.
func Run(ctx context.Context, svc app.ApplicationService, reader *bufio.Reader, userID int) {
	fmt.Println("Antenna Workshop")
	fmt.Println("Describe a stock operation in natural language, or use /help for commands.")
	fmt.Println(strings.Repeat("-", 70))

	errExit := fmt.Errorf("exit")

	dispatchSlash := func(input string) error {
		tokens := strings.Fields(strings.TrimPrefix(input, "/"))
		if len(tokens) == 0 {
			return nil
		}
		cmd := strings.ToLower(tokens[0])
		args := tokens[1:]

		switch cmd {
		case "stock", "st":
			result, err := svc.ListMaterials(ctx)
			if err != nil {
				return err
			}
			printStock(result)

		case "produce":
			// Usage: /produce <qty> <product name...>
			if len(args) < 2 {
				fmt.Println("Usage: /produce <qty> <product name>")
				return nil
			}
			qty, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Printf("Invalid quantity: %s\n", args[0])
				return nil
			}
			product := strings.Join(args[1:], " ")
			result, err := svc.Produce(ctx, app.ProduceRequest{ProductName: product, Quantity: qty, UserID: userID})
			if err != nil {
				return err
			}
			if result.Record == nil {
				fmt.Println("Nothing to do.")
				return nil
			}
			fmt.Printf("Produced %d x %s\n", result.Record.Quantity, result.Record.ProductName)
			for _, m := range result.Materials {
				fmt.Printf("  %-30s %6d %s\n", m.Name, m.CurrentStock, m.Unit)
			}

		case "restock":
			// Usage: /restock <qty> <material name...>
			if len(args) < 2 {
				fmt.Println("Usage: /restock <qty> <material name>")
				return nil
			}
			qty, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Printf("Invalid quantity: %s\n", args[0])
				return nil
			}
			material := strings.Join(args[1:], " ")
			result, err := svc.Restock(ctx, app.StockChangeRequest{MaterialName: material, Quantity: qty, UserID: userID})
			if err != nil {
				return err
			}
			m := result.Material
			fmt.Printf("%s: %d %s (%s)\n", m.Name, m.CurrentStock, m.Unit, m.Status)

		case "set":
			// Usage: /set <value> <material name...>
			if len(args) < 2 {
				fmt.Println("Usage: /set <value> <material name>")
				return nil
			}
			value, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				fmt.Printf("Invalid value: %s\n", args[0])
				return nil
			}
			material := strings.Join(args[1:], " ")
			result, err := svc.SetStock(ctx, app.StockChangeRequest{MaterialName: material, Quantity: value, UserID: userID})
			if err != nil {
				return err
			}
			m := result.Material
			fmt.Printf("%s: %d %s (%s)\n", m.Name, m.CurrentStock, m.Unit, m.Status)

		case "recipes", "products":
			result, err := svc.ListProducts(ctx)
			if err != nil {
				return err
			}
			for _, product := range result.Products {
				recipe, err := svc.GetRecipe(ctx, product)
				if err != nil {
					return err
				}
				printRecipe(recipe)
			}

		case "reorder":
			result, err := svc.ReorderReport(ctx)
			if err != nil {
				return err
			}
			printReorder(result)

		case "report":
			days := 30
			if len(args) > 0 {
				if d, err := strconv.Atoi(args[0]); err == nil && d > 0 {
					days = d
				}
			}
			summary, err := svc.ProductionSummary(ctx, days)
			if err != nil {
				return err
			}
			usage, err := svc.MaterialUsage(ctx, days)
			if err != nil {
				return err
			}
			printReports(summary, usage)

		case "log":
			limit := 20
			if len(args) > 0 {
				if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
					limit = n
				}
			}
			result, err := svc.ProductionLog(ctx, userID, limit)
			if err != nil {
				return err
			}
			printLog(result)

		case "pos":
			result, err := svc.ListPurchaseOrders(ctx, 20)
			if err != nil {
				return err
			}
			printPOList(result)

		case "po":
			if len(args) < 1 {
				fmt.Println("Usage: /po <id>")
				return nil
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Printf("Invalid id: %s\n", args[0])
				return nil
			}
			result, err := svc.GetPurchaseOrder(ctx, id)
			if err != nil {
				return err
			}
			printPODetail(result.Order)

		case "new-po":
			if len(args) < 1 {
				fmt.Println("Usage: /new-po <supplier name>")
				return nil
			}
			handleNewPO(ctx, reader, svc, strings.Join(args, " "), userID)

		case "help", "h":
			printHelp()

		case "exit", "quit", "e", "q":
			return errExit

		default:
			fmt.Printf("Unknown command: /%s  (type /help for all commands)\n", cmd)
		}
		return nil
	}

	for {
		fmt.Print("\n> ")
		input, _ := reader.ReadString('\n')
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		// Slash prefix means deterministic dispatch, no AI invoked.
		if strings.HasPrefix(input, "/") {
			if err := dispatchSlash(input); err != nil {
				if err == errExit {
					fmt.Println("Goodbye!")
					break
				}
				fmt.Printf("Error: %v\n", err)
			}
			continue
		}

		// Everything else goes to the assistant.
		fmt.Println("[AI] Processing...")
		result, err := svc.InterpretCommand(ctx, input)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		cmd := result.Command
		printCommand(cmd)

		if cmd.Confidence < 0.6 {
			fmt.Println("\nWARNING: Low confidence interpretation.")
		}

		fmt.Print("\nApply this command? (y/n): ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(strings.ToLower(choice))

		if choice == "y" || choice == "yes" {
			outcome, err := svc.ExecuteCommand(ctx, *cmd, userID)
			if err != nil {
				fmt.Printf("Command FAILED: %v\n", err)
			} else {
				fmt.Println(outcome.Message)
			}
		} else {
			fmt.Println("Cancelled.")
		}
	}
}
