package convert

// UnresolvedFilling identifies one door or window that could not be
// assigned to a constructive element, for the diagnostic listing.
type UnresolvedFilling struct {
	ID     int
	GUID   string
	Type   string
	Name   string
	Storey int
	Host   int
}

// Stats summarizes one conversion run.
type Stats struct {
	Buildings int
	Sites     int
	Features  int

	ByType              map[string]int
	SkippedUnsupported  map[string]int
	SkippedUnrecognized map[string]int

	MissingGeometry int
	Appearances     int

	EmbeddedFillings int
	DummiedFillings  int
	DroppedFillings  int
	DummyElements    int

	// Unresolved is only populated when the listing option is active.
	Unresolved []UnresolvedFilling
}

func newStats() *Stats {
	return &Stats{
		ByType:              make(map[string]int),
		SkippedUnsupported:  make(map[string]int),
		SkippedUnrecognized: make(map[string]int),
	}
}
