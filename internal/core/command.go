package core

import (
	"fmt"
	"strings"
)

// StockCommand actions.
const (
	ActionProduce  = "produce"
	ActionRestock  = "restock"
	ActionSetStock = "set_stock"
)

// StockCommand is a structured stock operation proposed by the assistant
// from a natural-language floor instruction. It is never executed directly:
// the caller shows it to the user and only a confirmed command is applied.
type StockCommand struct {
	Action     string  `json:"action" jsonschema:"enum=produce,enum=restock,enum=set_stock" jsonschema_description:"The stock operation to perform"`
	Target     string  `json:"target" jsonschema_description:"Product name for produce; material name for restock and set_stock"`
	Quantity   int64   `json:"quantity" jsonschema_description:"Units to produce or add, or the absolute stock value for set_stock"`
	Confidence float64 `json:"confidence" jsonschema_description:"Interpretation confidence between 0.0 and 1.0"`
	Reasoning  string  `json:"reasoning" jsonschema_description:"Short explanation of the interpretation"`
}

// Normalize trims whitespace and lowercases the action.
func (c *StockCommand) Normalize() {
	c.Action = strings.ToLower(strings.TrimSpace(c.Action))
	c.Target = strings.TrimSpace(c.Target)
}

// Validate checks the command is structurally executable.
func (c *StockCommand) Validate() error {
	switch c.Action {
	case ActionProduce, ActionRestock, ActionSetStock:
	default:
		return fmt.Errorf("unknown action %q", c.Action)
	}
	if c.Target == "" {
		return fmt.Errorf("command has no target")
	}
	if c.Action == ActionSetStock {
		if c.Quantity < 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidValue, c.Quantity)
		}
	} else if c.Quantity <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidQuantity, c.Quantity)
	}
	if c.Confidence < 0 || c.Confidence > 1 {
		return fmt.Errorf("confidence %.2f out of range", c.Confidence)
	}
	return nil
}
