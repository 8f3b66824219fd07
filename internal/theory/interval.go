package theory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/internal/notation"
)

// Interval is an ascending distance: its width in semitones and its generic size
// (Index: 1 = unison, 3 = third, 8 = octave, up to 15).
type Interval struct {
	Semitones int
	Index     int
	Short     string // "P5"
	Long      string // "perfect fifth"
}

// ParseInterval parses Quality Size, e.g. "P5", "m3", "A4", "d7", "M9".
func ParseInterval(text string) (Interval, error) {
	if len(text) < 2 {
		return Interval{}, parseErr("interval", text, text, 0, "expected quality and size")
	}
	quality := text[0]
	if _, ok := notation.QualityWords[quality]; !ok {
		return Interval{}, parseErr("interval", text, text[:1], 0, "unknown quality")
	}
	sizeText := text[1:]
	if !isDigits(sizeText) || sizeText[0] == '0' {
		return Interval{}, parseErr("interval", text, sizeText, 1, "malformed size")
	}
	size, err := strconv.Atoi(sizeText)
	if err != nil || size > notation.MaxIntervalSize {
		return Interval{}, parseErr("interval", text, sizeText, 1, "size out of range 1-15")
	}
	offset, ok := notation.QualityOffset(quality, size)
	if !ok {
		return Interval{}, parseErr("interval", text, text, 0, "quality does not apply to size")
	}
	semis := notation.DiatonicSemitones(size) + offset
	if semis < 0 {
		return Interval{}, parseErr("interval", text, text, 0, "negative width")
	}
	return Interval{
		Semitones: semis,
		Index:     size,
		Short:     string(quality) + strconv.Itoa(size),
		Long:      notation.LongIntervalName(quality, size),
	}, nil
}

// ParseIntervalList parses a comma-separated list of intervals such as an
// intervals-string.
func ParseIntervalList(text string) ([]Interval, error) {
	return ParseList(text, "interval", ParseInterval)
}

// IntervalFromSemitones returns the canonical interval of a width within two octaves.
func IntervalFromSemitones(semitones int) (Interval, error) {
	if semitones < 0 || semitones > notation.MaxIntervalSemitones {
		return Interval{}, fmt.Errorf("interval of %d semitones is outside the two-octave table", semitones)
	}
	iv, err := ParseInterval(notation.Intervals[semitones].Short)
	if err != nil {
		return Interval{}, fmt.Errorf("canonical interval table entry %d: %w", semitones, err)
	}
	return iv, nil
}

// newInterval names an interval from its generic size and width.
func newInterval(size, semis int, input string) (Interval, error) {
	if size < 1 || size > notation.MaxIntervalSize {
		return Interval{}, parseErr("interval", input, strconv.Itoa(size), 0, "size out of range 1-15")
	}
	quality, ok := notation.QualityFor(size, semis-notation.DiatonicSemitones(size))
	if !ok {
		return Interval{}, parseErr("interval", input, strconv.Itoa(semis), 0, "no quality spells this width")
	}
	return Interval{
		Semitones: semis,
		Index:     size,
		Short:     string(quality) + strconv.Itoa(size),
		Long:      notation.LongIntervalName(quality, size),
	}, nil
}

// Quality returns the quality symbol (P, M, m, A, d).
func (iv Interval) Quality() byte {
	if iv.Short == "" {
		return 0
	}
	return iv.Short[0]
}

// Perfect reports whether the interval belongs to the perfect family.
func (iv Interval) Perfect() bool { return notation.IsIntervalPerfect(iv.Index) }

func (iv Interval) String() string        { return iv.Short }
func (iv Interval) PreferredName() string { return iv.Short }
func (iv Interval) Names() []string       { return []string{iv.Short, iv.Long} }

// IntervalsString serialises intervals as the canonical record key, e.g. "P1,M3,P5".
func IntervalsString(ivs []Interval) string {
	parts := make([]string, len(ivs))
	for i, iv := range ivs {
		parts[i] = iv.Short
	}
	return strings.Join(parts, ",")
}
