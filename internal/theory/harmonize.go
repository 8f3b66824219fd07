package theory

import (
	"fmt"
)

// Chord sizes Harmonize can build.
const (
	Triad   = 3
	Seventh = 4
)

// Harmonize stacks size notes (Triad or Seventh) on degree d of scale and identifies the
// chord quality by looking up the resulting intervals-string in the chord catalog.
func Harmonize(chords *ChordIndex, scale Scale, d Degree, size int) (Chord, error) {
	if chords == nil {
		panic("theory: chord index not built")
	}
	if size != Triad && size != Seventh {
		return Chord{}, fmt.Errorf("harmonize: unsupported chord size %d", size)
	}
	notes, err := scale.Stack(d, size)
	if err != nil {
		return Chord{}, fmt.Errorf("harmonize: %w", err)
	}

	root := notes[0]
	ivs := make([]Interval, len(notes))
	for i, n := range notes {
		iv, err := IntervalBetween(root, n)
		if err != nil {
			return Chord{}, fmt.Errorf("harmonize %s on %s: %w", d, scale, err)
		}
		ivs[i] = iv
	}

	key := IntervalsString(ivs)
	rec, ok := chords.LookupIntervals(key)
	if !ok {
		return Chord{}, &UnknownNameError{Category: "chord intervals", Name: key, Input: scale.String() + " " + d.String()}
	}
	return Chord{Root: root, Intervals: ivs, Data: rec}, nil
}

// ParseProgression harmonizes a degree list such as "I,IV,V" as triads of scale.
func ParseProgression(chords *ChordIndex, scale Scale, text string) ([]Chord, error) {
	degrees, err := ParseDegreeList(text)
	if err != nil {
		return nil, err
	}
	out := make([]Chord, len(degrees))
	for i, d := range degrees {
		c, err := Harmonize(chords, scale, d, Triad)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}
