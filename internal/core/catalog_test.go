package core_test

import (
	"errors"
	"reflect"
	"testing"

	"antenna-workshop/internal/core"
)

func sampleSubAssemblies() map[string]core.Recipe {
	return map[string]core.Recipe{
		"Booster Assembly": {
			"Resistor 1k":              1,
			"Coil 26gsm (16cm)":        2,
			"F-Connector Female (2002)": 1,
		},
		"Power Supply Assembly": {
			"Transformer":              1,
			"F-Connector Female (2002)": 1,
			"IN4007 Diode":             2,
		},
		"Wire Assembly": {
			"16 1/2 Ygr Wire":         1,
			"F-Connector Male (4005)": 2,
		},
	}
}

func TestBuildCompleteUnitRecipe_SumsSharedMaterials(t *testing.T) {
	subs := sampleSubAssemblies()
	complete := core.BuildCompleteUnitRecipe([]core.Recipe{
		subs["Booster Assembly"],
		subs["Power Supply Assembly"],
		subs["Wire Assembly"],
	})

	// F-Connector Female appears in two sub-assemblies: 1 + 1 = 2.
	if got := complete["F-Connector Female (2002)"]; got != 2 {
		t.Errorf("Expected F-Connector Female requirement 2, got %d", got)
	}
	if got := complete["Resistor 1k"]; got != 1 {
		t.Errorf("Expected Resistor 1k requirement 1, got %d", got)
	}
	if got := complete["F-Connector Male (4005)"]; got != 2 {
		t.Errorf("Expected F-Connector Male requirement 2, got %d", got)
	}
	if len(complete) != 7 {
		t.Errorf("Expected 7 distinct materials, got %d", len(complete))
	}
}

func TestBuildCompleteUnitRecipe_OrderIndependent(t *testing.T) {
	subs := sampleSubAssemblies()
	a := subs["Booster Assembly"]
	b := subs["Power Supply Assembly"]
	c := subs["Wire Assembly"]

	permutations := [][]core.Recipe{
		{a, b, c},
		{a, c, b},
		{b, a, c},
		{b, c, a},
		{c, a, b},
		{c, b, a},
	}

	reference := core.BuildCompleteUnitRecipe(permutations[0])
	for i, perm := range permutations[1:] {
		result := core.BuildCompleteUnitRecipe(perm)
		if !reflect.DeepEqual(reference, result) {
			t.Errorf("Permutation %d produced a different flattened recipe: %v vs %v", i+1, result, reference)
		}
	}
}

func TestBuildCompleteUnitRecipe_EmptyInput(t *testing.T) {
	complete := core.BuildCompleteUnitRecipe(nil)
	if len(complete) != 0 {
		t.Errorf("Expected empty recipe for empty input, got %v", complete)
	}
}

func TestNewCatalog_AddsCompleteUnit(t *testing.T) {
	catalog, err := core.NewCatalog(sampleSubAssemblies(), "COMPLETE ANTENNA UNIT")
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	recipe, err := catalog.GetRecipe("COMPLETE ANTENNA UNIT")
	if err != nil {
		t.Fatalf("GetRecipe(complete unit) failed: %v", err)
	}
	if got := recipe["F-Connector Female (2002)"]; got != 2 {
		t.Errorf("Expected flattened requirement 2, got %d", got)
	}

	products := catalog.Products()
	want := []string{"Booster Assembly", "COMPLETE ANTENNA UNIT", "Power Supply Assembly", "Wire Assembly"}
	if !reflect.DeepEqual(products, want) {
		t.Errorf("Products() = %v, want %v", products, want)
	}
}

func TestCatalog_GetRecipe_Unknown(t *testing.T) {
	catalog, err := core.NewCatalog(sampleSubAssemblies(), "")
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	_, err = catalog.GetRecipe("Flux Capacitor")
	if !errors.Is(err, core.ErrNoRecipe) {
		t.Errorf("Expected ErrNoRecipe, got %v", err)
	}
}

func TestCatalog_GetRecipe_ReturnsCopy(t *testing.T) {
	catalog, err := core.NewCatalog(sampleSubAssemblies(), "")
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	first, _ := catalog.GetRecipe("Wire Assembly")
	first["16 1/2 Ygr Wire"] = 999

	second, _ := catalog.GetRecipe("Wire Assembly")
	if second["16 1/2 Ygr Wire"] != 1 {
		t.Error("Mutating a returned recipe leaked into the catalog")
	}
}

func TestNewCatalog_RejectsBadInput(t *testing.T) {
	_, err := core.NewCatalog(map[string]core.Recipe{
		"Broken": {"Resistor 1k": 0},
	}, "")
	if err == nil {
		t.Error("Expected error for non-positive quantity, got nil")
	}

	_, err = core.NewCatalog(map[string]core.Recipe{
		"Booster Assembly": {"Resistor 1k": 1},
	}, "Booster Assembly")
	if err == nil {
		t.Error("Expected error for complete-unit name collision, got nil")
	}

	_, err = core.NewCatalog(map[string]core.Recipe{
		"Empty": {},
	}, "")
	if err == nil {
		t.Error("Expected error for empty recipe, got nil")
	}
}

func TestCatalog_MaterialNames(t *testing.T) {
	catalog, err := core.NewCatalog(sampleSubAssemblies(), "COMPLETE ANTENNA UNIT")
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}

	names := catalog.MaterialNames()
	if len(names) != 7 {
		t.Fatalf("Expected 7 distinct materials, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("MaterialNames not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
