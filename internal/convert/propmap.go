package convert

import (
	"strconv"

	"github.com/tum-gis/ifc-to-citygml3/internal/citygml"
	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

// mapProperties transforms an element's property sets into generic
// attributes. The default wraps each set in a gen:GenericAttributeSet;
// flattening emits the entries directly on the feature. Prefixing renders
// each name as [PsetName]Key. Collisions between flattened keys are kept in
// source order rather than deduplicated.
func mapProperties(psets []ifc.PropertySet, flatten, prefix bool) []citygml.GenericAttributeProperty {
	var out []citygml.GenericAttributeProperty
	for _, pset := range psets {
		if pset.Name == "id" {
			continue
		}
		var attrs []citygml.GenericAttributeProperty
		for _, prop := range pset.Properties {
			if prop.Name == "id" {
				continue
			}
			name := prop.Name
			if prefix {
				name = "[" + pset.Name + "]" + name
			}
			attrs = append(attrs, attributeFor(name, prop.Value))
		}
		if len(attrs) == 0 {
			continue
		}
		if flatten {
			out = append(out, attrs...)
			continue
		}
		out = append(out, citygml.GenericAttributeProperty{
			Set: &citygml.GenericAttributeSet{Name: pset.Name, Attributes: attrs},
		})
	}
	return out
}

// attributeFor converts one typed value. CityGML generics have no boolean
// attribute, so booleans become integer 0/1.
func attributeFor(name string, v ifc.PropertyValue) citygml.GenericAttributeProperty {
	switch v.Type {
	case ifc.TypeBool:
		value := "0"
		if v.Bool {
			value = "1"
		}
		return citygml.GenericAttributeProperty{Int: &citygml.NamedAttribute{Name: name, Value: value}}
	case ifc.TypeInt:
		return citygml.GenericAttributeProperty{Int: &citygml.NamedAttribute{Name: name, Value: strconv.FormatInt(v.Int, 10)}}
	case ifc.TypeDouble:
		return citygml.GenericAttributeProperty{Double: &citygml.NamedAttribute{Name: name, Value: strconv.FormatFloat(v.Num, 'g', -1, 64)}}
	default:
		return citygml.GenericAttributeProperty{String: &citygml.NamedAttribute{Name: name, Value: v.Str}}
	}
}
