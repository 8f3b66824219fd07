package theory

// Named is implemented by every value that has display names: notes, intervals,
// chords, scales and the catalog records behind chords and scales.
type Named interface {
	// PreferredName is the default display name.
	PreferredName() string
	// Names lists every name, preferred first.
	Names() []string
}

// DisplayNames returns the preferred name of each item.
func DisplayNames(items ...Named) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.PreferredName()
	}
	return out
}
