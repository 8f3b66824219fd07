package theory

import (
	"fmt"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
)

// NameSeparator separates a root note from a chord or scale name ("C4_major7").
const NameSeparator = "_"

// ChordIndex is the chord catalog.
type ChordIndex = catalog.Index[catalog.ChordData]

// Chord is a root with the intervals of a catalog chord quality.
type Chord struct {
	Root      Note
	Intervals []Interval
	Data      *catalog.ChordData
}

// ParseChord parses either "Note_Name" (the root may carry an octave: "C4_major7") or
// "RootName" without separator ("Cmaj7", "Bbm7", "C5"), where the root never carries an
// octave. Name may be any of a record's full, short or symbol names.
//
// A nil index is a programmer error and panics.
func ParseChord(idx *ChordIndex, text string) (Chord, error) {
	if idx == nil {
		panic("theory: chord index not built")
	}

	var (
		root Note
		name string
	)
	if rootText, rest, found := strings.Cut(text, NameSeparator); found {
		n, err := ParseNote(rootText)
		if err != nil {
			return Chord{}, rootErr("chord", text, err)
		}
		root, name = n, rest
	} else {
		n, consumed, err := scanNote(text, "chord")
		if err != nil {
			return Chord{}, err
		}
		root, name = n, text[consumed:]
	}
	if name == "" {
		return Chord{}, parseErr("chord", text, "", len(text), "missing chord name")
	}

	rec, ok := idx.Lookup(name)
	if !ok {
		return Chord{}, &UnknownNameError{Category: "chord", Name: name, Input: text}
	}
	return NewChord(root, rec)
}

// NewChord instantiates a catalog record on root.
func NewChord(root Note, rec *catalog.ChordData) (Chord, error) {
	ivs, err := ParseIntervalList(rec.Intervals)
	if err != nil {
		return Chord{}, fmt.Errorf("chord record %q: %w", rec.PreferredName(), err)
	}
	return Chord{Root: root, Intervals: ivs, Data: rec}, nil
}

// Notes spells every chord member from the root upwards.
func (c Chord) Notes() []Note {
	out := make([]Note, len(c.Intervals))
	for i, iv := range c.Intervals {
		out[i] = c.Root.Transpose(iv)
	}
	return out
}

// Symbol returns the lead-sheet spelling, e.g. "CM7" or "Bbm".
func (c Chord) Symbol() string { return c.Root.Name() + c.Data.Symbol }

// IntervalsString returns the record key of the chord quality.
func (c Chord) IntervalsString() string { return IntervalsString(c.Intervals) }

func (c Chord) String() string { return c.PreferredName() }

// PreferredName is the root followed by the record's preferred name, e.g. "C4_major7".
func (c Chord) PreferredName() string {
	return c.Root.String() + NameSeparator + c.Data.PreferredName()
}

func (c Chord) Names() []string {
	names := c.Data.Names()
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = c.Root.String() + NameSeparator + n
	}
	return out
}

// validateChordIntervals enforces the chord invariants: starts at the unison and
// strictly increases in width.
func validateChordIntervals(ivs []Interval) error {
	if len(ivs) == 0 || ivs[0].Semitones != 0 || ivs[0].Index != 1 {
		return fmt.Errorf("chord intervals must start with P1")
	}
	for i := 1; i < len(ivs); i++ {
		if ivs[i].Semitones <= ivs[i-1].Semitones {
			return fmt.Errorf("interval %s does not ascend from %s", ivs[i].Short, ivs[i-1].Short)
		}
	}
	return nil
}
