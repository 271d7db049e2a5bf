package convert

// Options is the conversion configuration. The zero value is the default
// behavior: full output with generic-attribute sets, no reorientation, no
// forced georeference, unresolved fillings silently dropped.
type Options struct {
	// SuppressReferences omits core:externalReference elements.
	SuppressReferences bool
	// SuppressProperties omits all generic attributes.
	SuppressProperties bool
	// SuppressStoreys omits bldg:Storey subdivisions.
	SuppressStoreys bool
	// SuppressAppearances bypasses the appearance builder entirely.
	SuppressAppearances bool

	// FlattenAttributes emits property-set entries as direct generic
	// attributes instead of gen:GenericAttributeSet containers.
	FlattenAttributes bool
	// PrefixAttributeNames renders flattened attribute names as
	// [PsetName]Key.
	PrefixAttributeNames bool

	// ListUnresolvedFillings records doors and windows without a host in
	// the conversion report.
	ListUnresolvedFillings bool
	// DummyFillings groups unresolved doors and windows into one synthetic
	// empty constructive element per storey instead of dropping them.
	DummyFillings bool

	// ReorientShells rewinds closed shells to face outward. Costly on
	// large models.
	ReorientShells bool

	// ForceAnchor overrides any embedded georeference with the fixed
	// anchor.
	ForceAnchor bool
	// Offsets are added to every output coordinate after georeferencing.
	OffsetX, OffsetY, OffsetZ float64

	// NewID overrides gml:id generation; tests inject a deterministic
	// generator here. Nil selects random UUIDs.
	NewID func() string
}
