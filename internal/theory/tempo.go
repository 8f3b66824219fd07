package theory

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// MaxBpm is the fastest accepted tempo.
const MaxBpm = 1000

// Bpm is a tempo in quarter-note beats per minute, within (0, MaxBpm].
type Bpm float64

// ParseBpm parses a positive decimal number such as "90" or "72.5". Signs, exponents
// and hex forms are rejected.
func ParseBpm(text string) (Bpm, error) {
	if !isDecimal(text) {
		return 0, parseErr("bpm", text, text, 0, "not a number")
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, parseErr("bpm", text, text, 0, "not a number")
	}
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0, parseErr("bpm", text, text, 0, "not a finite number")
	case v <= 0:
		return 0, parseErr("bpm", text, text, 0, "must be positive")
	case v > MaxBpm:
		return 0, parseErr("bpm", text, text, 0, "exceeds "+strconv.Itoa(MaxBpm))
	}
	return Bpm(v), nil
}

// isDecimal reports whether s is digits with an optional fractional part.
func isDecimal(s string) bool {
	whole, frac, found := strings.Cut(s, ".")
	return isDigits(whole) && (!found || isDigits(frac))
}

// BeatDuration is the wall-clock length of one beat.
func (b Bpm) BeatDuration() time.Duration {
	return time.Duration(float64(time.Minute) / float64(b))
}

func (b Bpm) String() string { return strconv.FormatFloat(float64(b), 'f', -1, 64) }
