package theory

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
	"github.com/Conceptual-Machines/magda-theory/internal/notation"
)

// ScaleIndex is the scale catalog.
type ScaleIndex = catalog.Index[catalog.ScaleData]

// Scale is a root with the intervals of a catalog scale. The root's octave, when
// present, anchors the scale.
type Scale struct {
	Root      Note
	Intervals []Interval
	Data      *catalog.ScaleData
}

// ParseScale parses "Note[Octave]_Name", e.g. "C4_major" or "F#_dorian".
//
// A nil index is a programmer error and panics.
func ParseScale(idx *ScaleIndex, text string) (Scale, error) {
	if idx == nil {
		panic("theory: scale index not built")
	}

	rootText, name, found := strings.Cut(text, NameSeparator)
	if !found {
		return Scale{}, parseErr("scale", text, text, 0, "expected Note_ScaleName")
	}
	root, err := ParseNote(rootText)
	if err != nil {
		return Scale{}, rootErr("scale", text, err)
	}
	if name == "" {
		return Scale{}, parseErr("scale", text, "", len(text), "missing scale name")
	}

	rec, ok := idx.Lookup(name)
	if !ok {
		return Scale{}, &UnknownNameError{Category: "scale", Name: name, Input: text}
	}
	return NewScale(root, rec)
}

// NewScale instantiates a catalog record on root.
func NewScale(root Note, rec *catalog.ScaleData) (Scale, error) {
	ivs, err := ParseIntervalList(rec.Intervals)
	if err != nil {
		return Scale{}, fmt.Errorf("scale record %q: %w", rec.PreferredName(), err)
	}
	return Scale{Root: root, Intervals: ivs, Data: rec}, nil
}

// Octave returns the anchor octave, if any.
func (s Scale) Octave() (int, bool) { return s.Root.Octave, s.Root.HasOctave }

// Notes spells one octave of the scale from the root.
func (s Scale) Notes() []Note {
	out := make([]Note, len(s.Intervals))
	for i, iv := range s.Intervals {
		out[i] = s.Root.Transpose(iv)
	}
	return out
}

// Note returns the member at degree d (I is the root).
func (s Scale) Note(d Degree) (Note, error) {
	if d < 1 || int(d) > len(s.Intervals) {
		return Note{}, fmt.Errorf("degree %s is outside %s (%d notes)", d, s.PreferredName(), len(s.Intervals))
	}
	return s.Root.Transpose(s.Intervals[d-1]), nil
}

// Stack builds size notes on degree d by taking every other scale member, i.e. stacked
// thirds on a heptatonic scale. Members past the octave are raised by octaves.
func (s Scale) Stack(d Degree, size int) ([]Note, error) {
	if _, err := s.Note(d); err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, fmt.Errorf("stack size must be positive, got %d", size)
	}
	members := s.Notes()
	out := make([]Note, size)
	for k := 0; k < size; k++ {
		pos := int(d) - 1 + 2*k
		n := members[pos%len(members)]
		if octaves := pos / len(members); octaves > 0 && n.HasOctave {
			n.Octave += octaves
		}
		out[k] = n
	}
	return out, nil
}

// IntervalsString returns the record key of the scale.
func (s Scale) IntervalsString() string { return IntervalsString(s.Intervals) }

func (s Scale) String() string { return s.PreferredName() }

// PreferredName is the root followed by the record's preferred name, e.g. "C4_major".
func (s Scale) PreferredName() string {
	return s.Root.String() + NameSeparator + s.Data.PreferredName()
}

func (s Scale) Names() []string {
	out := make([]string, len(s.Data.NameList))
	for i, n := range s.Data.NameList {
		out[i] = s.Root.String() + NameSeparator + n
	}
	return out
}

// validateScaleIntervals enforces the scale invariants: starts at the unison, strictly
// ascends within one octave, and uses each generic size at most once.
func validateScaleIntervals(ivs []Interval) error {
	if err := validateChordIntervals(ivs); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	seen := make(map[int]bool, len(ivs))
	for _, iv := range ivs {
		if iv.Semitones >= notation.SemitonesPerOctave || iv.Index > notation.LettersPerOctave {
			return fmt.Errorf("interval %s exceeds one octave", iv.Short)
		}
		if seen[iv.Index] {
			return fmt.Errorf("generic size %d used twice", iv.Index)
		}
		seen[iv.Index] = true
	}
	return nil
}
