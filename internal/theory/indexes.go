package theory

import (
	"fmt"
	"time"

	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
)

// Indexes holds the chord and scale catalogs. It is built once at startup and only
// read afterwards, so it can be shared between goroutines without locking.
type Indexes struct {
	Chords *ChordIndex
	Scales *ScaleIndex

	// BuildDuration is how long indexing the tables took.
	BuildDuration time.Duration
}

// BuildIndexes builds both catalogs from the tables embedded in the binary.
func BuildIndexes() (*Indexes, error) {
	chords, err := catalog.DefaultChordTable()
	if err != nil {
		return nil, err
	}
	scales, err := catalog.DefaultScaleTable()
	if err != nil {
		return nil, err
	}
	return NewIndexes(chords, scales)
}

// NewIndexes builds both catalogs from explicit tables. Any integrity problem is
// returned as a *catalog.IndexIntegrityError.
func NewIndexes(chords catalog.ChordTable, scales catalog.ScaleTable) (*Indexes, error) {
	started := time.Now()
	ci, err := BuildChordIndex(chords)
	if err != nil {
		return nil, err
	}
	si, err := BuildScaleIndex(scales)
	if err != nil {
		return nil, err
	}
	return &Indexes{Chords: ci, Scales: si, BuildDuration: time.Since(started)}, nil
}

// BuildChordIndex indexes a chord table, validating every intervals-string.
func BuildChordIndex(t catalog.ChordTable) (*ChordIndex, error) {
	return catalog.Build("chord", t.Labels, t.Chords, func(c catalog.ChordData) error {
		return checkKey(c.Intervals, validateChordIntervals)
	})
}

// BuildScaleIndex indexes a scale table, validating every intervals-string.
func BuildScaleIndex(t catalog.ScaleTable) (*ScaleIndex, error) {
	return catalog.Build("scale", t.Labels, t.Scales, func(s catalog.ScaleData) error {
		return checkKey(s.Intervals, validateScaleIntervals)
	})
}

// checkKey parses an intervals-string, requires it to be in canonical form so that
// LookupIntervals can find it, and applies the category invariants.
func checkKey(key string, validate func([]Interval) error) error {
	ivs, err := ParseIntervalList(key)
	if err != nil {
		return err
	}
	if canonical := IntervalsString(ivs); canonical != key {
		return fmt.Errorf("intervals not in canonical form, want %q", canonical)
	}
	return validate(ivs)
}

// ParseChord parses a chord against the chord catalog.
func (ix *Indexes) ParseChord(text string) (Chord, error) { return ParseChord(ix.Chords, text) }

// ParseScale parses a scale against the scale catalog.
func (ix *Indexes) ParseScale(text string) (Scale, error) { return ParseScale(ix.Scales, text) }
