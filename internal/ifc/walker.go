package ifc

import "sort"

// CatalogueEntry is one source element annotated with the nearest enclosing
// storey on its spatial containment path (0 when the element hangs directly
// under the building).
type CatalogueEntry struct {
	Element *Element
	Storey  int
}

// BuildingCatalogue is the flat, id-ordered catalogue of everything
// contained in one building.
type BuildingCatalogue struct {
	Building *Element
	Entries  []CatalogueEntry
}

// Walk traverses the spatial containment hierarchy and returns one
// catalogue per IfcBuilding, in stable-id order. Entries within a catalogue
// are likewise ordered by stable id so downstream stages produce
// deterministic output regardless of extraction order.
func Walk(m *Model) []BuildingCatalogue {
	children := make(map[int][]*Element)
	for _, e := range m.Elements {
		children[e.Parent] = append(children[e.Parent], e)
	}

	var catalogues []BuildingCatalogue
	for _, e := range m.Elements {
		if e.Type != "IfcBuilding" {
			continue
		}
		cat := BuildingCatalogue{Building: e}
		var walk func(parent *Element, storey int)
		walk = func(parent *Element, storey int) {
			for _, child := range children[parent.ID] {
				s := storey
				if child.Type == "IfcBuildingStorey" {
					s = child.ID
				}
				cat.Entries = append(cat.Entries, CatalogueEntry{Element: child, Storey: s})
				walk(child, s)
			}
		}
		walk(e, 0)
		sort.Slice(cat.Entries, func(i, j int) bool {
			return cat.Entries[i].Element.ID < cat.Entries[j].Element.ID
		})
		catalogues = append(catalogues, cat)
	}
	return catalogues
}

// Sites returns the model's IfcSite elements in stable-id order.
func Sites(m *Model) []*Element {
	var sites []*Element
	for _, e := range m.Elements {
		if e.Type == "IfcSite" {
			sites = append(sites, e)
		}
	}
	return sites
}
