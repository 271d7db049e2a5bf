package convert

import (
	"sort"

	"github.com/tum-gis/ifc-to-citygml3/internal/ifc"
)

// fillingState tracks one door or window through host resolution. Every
// opening ends in exactly one terminal state: embedded in its host,
// grouped into a dummy element, or dropped while still unresolved.
type fillingState int

const (
	fillingUnresolved fillingState = iota
	fillingEmbedded
	fillingDummied
)

// fillingResolver owns the per-opening state machine.
type fillingResolver struct {
	states  map[int]fillingState
	pending []ifc.CatalogueEntry
}

func newFillingResolver() *fillingResolver {
	return &fillingResolver{states: make(map[int]fillingState)}
}

// register adds a door/window catalogue entry in the Unresolved state.
func (r *fillingResolver) register(entry ifc.CatalogueEntry) {
	if _, ok := r.states[entry.Element.ID]; ok {
		return
	}
	r.states[entry.Element.ID] = fillingUnresolved
	r.pending = append(r.pending, entry)
}

// markEmbedded transitions Unresolved -> Embedded. Reports whether the
// transition happened, so an opening can never be emitted twice.
func (r *fillingResolver) markEmbedded(id int) bool {
	if r.states[id] != fillingUnresolved {
		return false
	}
	r.states[id] = fillingEmbedded
	return true
}

// markDummied transitions Unresolved -> Dummied.
func (r *fillingResolver) markDummied(id int) bool {
	if r.states[id] != fillingUnresolved {
		return false
	}
	r.states[id] = fillingDummied
	return true
}

// unresolved returns the openings still in the Unresolved state, in
// registration (stable id) order.
func (r *fillingResolver) unresolved() []ifc.CatalogueEntry {
	var out []ifc.CatalogueEntry
	for _, entry := range r.pending {
		if r.states[entry.Element.ID] == fillingUnresolved {
			out = append(out, entry)
		}
	}
	return out
}

// storeyGroup is the set of unresolved openings of one storey. Storey 0
// collects openings with no storey on their containment path.
type storeyGroup struct {
	Storey  int
	Entries []ifc.CatalogueEntry
}

// unresolvedByStorey groups the unresolved openings by storey, storeys in
// stable-id order with the no-storey group last.
func (r *fillingResolver) unresolvedByStorey() []storeyGroup {
	byStorey := make(map[int][]ifc.CatalogueEntry)
	for _, entry := range r.unresolved() {
		byStorey[entry.Storey] = append(byStorey[entry.Storey], entry)
	}
	ids := make([]int, 0, len(byStorey))
	for id := range byStorey {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	if _, ok := byStorey[0]; ok {
		ids = append(ids, 0)
	}
	groups := make([]storeyGroup, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, storeyGroup{Storey: id, Entries: byStorey[id]})
	}
	return groups
}
