package config

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"antenna-workshop/internal/core"
)

// FactoryCatalog is the workshop's configured material list and product
// recipes, loaded from a YAML file so the floor manager can edit them
// without a rebuild.
type FactoryCatalog struct {
	Materials    []core.MaterialSeed
	Recipes      map[string]core.Recipe
	CompleteUnit string
}

type catalogFile struct {
	CompleteUnit string `mapstructure:"complete_unit"`

	Materials []struct {
		Name         string  `mapstructure:"name"`
		Unit         string  `mapstructure:"unit"`
		ReorderPoint int64   `mapstructure:"reorder_point"`
		UnitCost     float64 `mapstructure:"unit_cost"`
	} `mapstructure:"materials"`

	Recipes map[string]map[string]int64 `mapstructure:"recipes"`
}

// LoadCatalog reads the factory catalog from path.
func LoadCatalog(path string) (*FactoryCatalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var raw catalogFile
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}
	if len(raw.Recipes) == 0 {
		return nil, fmt.Errorf("catalog %q defines no recipes", path)
	}

	fc := &FactoryCatalog{
		Recipes:      make(map[string]core.Recipe, len(raw.Recipes)),
		CompleteUnit: raw.CompleteUnit,
	}
	for _, m := range raw.Materials {
		fc.Materials = append(fc.Materials, core.MaterialSeed{
			Name:         m.Name,
			Unit:         m.Unit,
			ReorderPoint: m.ReorderPoint,
			UnitCost:     decimal.NewFromFloat(m.UnitCost),
		})
	}
	for product, lines := range raw.Recipes {
		recipe := make(core.Recipe, len(lines))
		for material, qty := range lines {
			recipe[material] = qty
		}
		fc.Recipes[product] = recipe
	}
	return fc, nil
}
