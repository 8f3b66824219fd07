package theory

import (
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/magda-theory/internal/notation"
)

// Degree is a scale position 1..7.
type Degree int

// ParseDegree parses a Roman numeral I..VII, case-insensitively.
func ParseDegree(text string) (Degree, error) {
	upper := strings.ToUpper(text)
	for d := 1; d < len(notation.RomanNumerals); d++ {
		if notation.RomanNumerals[d] == upper {
			return Degree(d), nil
		}
	}
	return 0, parseErr("degree", text, text, 0, "expected roman numeral I-VII")
}

// ParseDegreeList parses a comma-separated list of degrees, e.g. "I,IV,V".
func ParseDegreeList(text string) ([]Degree, error) {
	return ParseList(text, "degree", ParseDegree)
}

// Valid reports whether d is within 1..7.
func (d Degree) Valid() bool { return d >= 1 && int(d) < len(notation.RomanNumerals) }

func (d Degree) String() string {
	if !d.Valid() {
		return "Degree(" + strconv.Itoa(int(d)) + ")"
	}
	return notation.RomanNumerals[d]
}
