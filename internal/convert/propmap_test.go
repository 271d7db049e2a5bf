package convert

import (
	"testing"

	"github.com/tum-gis/ifc-to-citygml3/internal/citygml"
	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

func testPsets() []ifc.PropertySet {
	return []ifc.PropertySet{
		{Name: "id", Properties: []ifc.Property{
			{Name: "value", Value: ifc.PropertyValue{Type: ifc.TypeString, Str: "internal"}},
		}},
		{Name: "Pset_WallCommon", Properties: []ifc.Property{
			{Name: "id", Value: ifc.PropertyValue{Type: ifc.TypeInt, Int: 42}},
			{Name: "IsExternal", Value: ifc.PropertyValue{Type: ifc.TypeBool, Bool: true}},
			{Name: "LoadBearing", Value: ifc.PropertyValue{Type: ifc.TypeBool, Bool: false}},
			{Name: "FireRating", Value: ifc.PropertyValue{Type: ifc.TypeString, Str: "F30"}},
			{Name: "Width", Value: ifc.PropertyValue{Type: ifc.TypeDouble, Num: 0.24}},
			{Name: "Layers", Value: ifc.PropertyValue{Type: ifc.TypeInt, Int: 3}},
		}},
	}
}

func TestMapPropertiesSets(t *testing.T) {
	out := mapProperties(testPsets(), false, false)
	if got, want := len(out), 1; got != want {
		t.Fatalf("got %d attribute properties, want %d (id pset must be skipped)", got, want)
	}
	set := out[0].Set
	if set == nil {
		t.Fatal("expected a GenericAttributeSet")
	}
	if got, want := set.Name, "Pset_WallCommon"; got != want {
		t.Errorf("set name = %q, want %q", got, want)
	}
	if got, want := len(set.Attributes), 5; got != want {
		t.Fatalf("got %d attributes, want %d (id key must be skipped)", got, want)
	}
}

func TestMapPropertiesValueTypes(t *testing.T) {
	out := mapProperties(testPsets(), true, false)
	if got, want := len(out), 5; got != want {
		t.Fatalf("got %d flattened attributes, want %d", got, want)
	}

	byName := make(map[string]citygml.GenericAttributeProperty)
	for _, a := range out {
		switch {
		case a.String != nil:
			byName[a.String.Name] = a
		case a.Int != nil:
			byName[a.Int.Name] = a
		case a.Double != nil:
			byName[a.Double.Name] = a
		}
	}

	// Booleans become integer attributes with value 0/1.
	if a := byName["IsExternal"]; a.Int == nil || a.Int.Value != "1" {
		t.Errorf("IsExternal = %+v, want IntAttribute 1", a)
	}
	if a := byName["LoadBearing"]; a.Int == nil || a.Int.Value != "0" {
		t.Errorf("LoadBearing = %+v, want IntAttribute 0", a)
	}
	if a := byName["Layers"]; a.Int == nil || a.Int.Value != "3" {
		t.Errorf("Layers = %+v, want IntAttribute 3", a)
	}
	if a := byName["Width"]; a.Double == nil || a.Double.Value != "0.24" {
		t.Errorf("Width = %+v, want DoubleAttribute 0.24", a)
	}
	if a := byName["FireRating"]; a.String == nil || a.String.Value != "F30" {
		t.Errorf("FireRating = %+v, want StringAttribute F30", a)
	}
}

func TestMapPropertiesPrefix(t *testing.T) {
	out := mapProperties(testPsets(), true, true)
	found := false
	for _, a := range out {
		if a.Int != nil && a.Int.Name == "[Pset_WallCommon]IsExternal" {
			found = true
		}
	}
	if !found {
		t.Error("prefixed name [Pset_WallCommon]IsExternal not found")
	}
}

func TestMapPropertiesKeepsCollisionsInOrder(t *testing.T) {
	psets := []ifc.PropertySet{
		{Name: "A", Properties: []ifc.Property{
			{Name: "Key", Value: ifc.PropertyValue{Type: ifc.TypeString, Str: "first"}},
		}},
		{Name: "B", Properties: []ifc.Property{
			{Name: "Key", Value: ifc.PropertyValue{Type: ifc.TypeString, Str: "second"}},
		}},
	}
	out := mapProperties(psets, true, false)
	if got, want := len(out), 2; got != want {
		t.Fatalf("got %d attributes, want %d (collisions are kept, not deduplicated)", got, want)
	}
	if out[0].String.Value != "first" || out[1].String.Value != "second" {
		t.Errorf("collision order = %q, %q, want first, second", out[0].String.Value, out[1].String.Value)
	}
}

func TestMapPropertiesEmpty(t *testing.T) {
	if out := mapProperties(nil, false, false); len(out) != 0 {
		t.Errorf("got %d attributes for nil input, want 0", len(out))
	}
	psets := []ifc.PropertySet{{Name: "Empty"}}
	if out := mapProperties(psets, false, false); len(out) != 0 {
		t.Errorf("got %d attributes for an empty pset, want 0", len(out))
	}
}
