package theory

import (
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/internal/notation"
)

// Duration is a named note length, stored as the denominator of its fraction of a
// whole note (quarter = 4).
type Duration struct {
	Name        string
	Denominator int
}

// ParseDuration accepts a name ("quarter", case-insensitive) or a fraction ("1/4").
func ParseDuration(text string) (Duration, error) {
	lower := strings.ToLower(text)
	for _, d := range notation.Durations {
		if d.Name == lower || "1/"+strconv.Itoa(d.Denominator) == lower {
			return Duration{Name: d.Name, Denominator: d.Denominator}, nil
		}
	}
	return Duration{}, parseErr("duration", text, text, 0, "unknown duration")
}

// DurationFromValue maps a fraction of a whole note back to its named duration.
func DurationFromValue(v float64) (Duration, bool) {
	for _, d := range notation.Durations {
		if 1/float64(d.Denominator) == v {
			return Duration{Name: d.Name, Denominator: d.Denominator}, true
		}
	}
	return Duration{}, false
}

// Value returns the length as a fraction of a whole note.
func (d Duration) Value() float64 { return 1 / float64(d.Denominator) }

// Beats returns the length counted in beats of ts, e.g. a half note is 2 beats in 4/4
// and 4 beats in 6/8.
func (d Duration) Beats(ts TimeSignature) float64 {
	return float64(ts.Denominator) / float64(d.Denominator)
}

func (d Duration) Fraction() string { return "1/" + strconv.Itoa(d.Denominator) }

func (d Duration) String() string        { return d.Name }
func (d Duration) PreferredName() string { return d.Name }
func (d Duration) Names() []string       { return []string{d.Name, d.Fraction()} }
