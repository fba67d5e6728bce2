package core

import (
	"fmt"
	"sort"
)

// Recipe maps a material name to the quantity consumed per unit produced.
type Recipe map[string]int64

// Clone returns an independent copy of the recipe.
func (r Recipe) Clone() Recipe {
	out := make(Recipe, len(r))
	for name, qty := range r {
		out[name] = qty
	}
	return out
}

// Catalog holds the workshop's bill-of-materials table. It is built once at
// startup from the factory configuration and never mutated afterwards, so it
// is safe for concurrent reads without locking.
type Catalog struct {
	recipes  map[string]Recipe
	products []string // sorted recipe names, cached for listing
}

// BuildCompleteUnitRecipe sums the per-material requirements of the given
// sub-assembly recipes into a single flattened recipe. Summation is
// commutative, so the result is identical for any ordering of the input.
func BuildCompleteUnitRecipe(subAssemblies []Recipe) Recipe {
	complete := Recipe{}
	for _, sub := range subAssemblies {
		for material, qty := range sub {
			complete[material] += qty
		}
	}
	return complete
}

// NewCatalog assembles the catalog from the configured sub-assembly recipes
// and adds the derived complete-unit recipe under completeUnitName. Every
// recipe is validated: quantities must be positive and completeUnitName must
// not collide with a sub-assembly name.
func NewCatalog(subAssemblies map[string]Recipe, completeUnitName string) (*Catalog, error) {
	recipes := make(map[string]Recipe, len(subAssemblies)+1)
	for product, recipe := range subAssemblies {
		if len(recipe) == 0 {
			return nil, fmt.Errorf("recipe for %q is empty", product)
		}
		for material, qty := range recipe {
			if qty <= 0 {
				return nil, fmt.Errorf("recipe for %q: material %q has non-positive quantity %d", product, material, qty)
			}
		}
		recipes[product] = recipe.Clone()
	}

	if completeUnitName != "" {
		if _, exists := recipes[completeUnitName]; exists {
			return nil, fmt.Errorf("complete-unit name %q collides with a sub-assembly recipe", completeUnitName)
		}
		subs := make([]Recipe, 0, len(subAssemblies))
		for _, recipe := range subAssemblies {
			subs = append(subs, recipe)
		}
		recipes[completeUnitName] = BuildCompleteUnitRecipe(subs)
	}

	products := make([]string, 0, len(recipes))
	for product := range recipes {
		products = append(products, product)
	}
	sort.Strings(products)

	return &Catalog{recipes: recipes, products: products}, nil
}

// GetRecipe returns the bill of materials for a product.
// Returns ErrNoRecipe if the product is unknown.
func (c *Catalog) GetRecipe(product string) (Recipe, error) {
	recipe, ok := c.recipes[product]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoRecipe, product)
	}
	return recipe.Clone(), nil
}

// Products returns all recipe names in ascending order.
func (c *Catalog) Products() []string {
	out := make([]string, len(c.products))
	copy(out, c.products)
	return out
}

// MaterialNames returns the sorted set of every material referenced by any
// recipe. Used by catalog seeding to cross-check the material configuration.
func (c *Catalog) MaterialNames() []string {
	seen := map[string]struct{}{}
	for _, recipe := range c.recipes {
		for material := range recipe {
			seen[material] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
