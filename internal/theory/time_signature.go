package theory

import (
	"strconv"
	"strings"
)

// TimeSignature is a meter such as 4/4 or 6/8. The denominator is always a power of two.
type TimeSignature struct {
	Numerator   int
	Denominator int
}

// CommonTime is 4/4.
var CommonTime = TimeSignature{Numerator: 4, Denominator: 4}

// ParseTimeSignature parses "N/D" where both parts are positive integers and D is a
// power of two.
func ParseTimeSignature(text string) (TimeSignature, error) {
	num, den, found := strings.Cut(text, "/")
	if !found {
		return TimeSignature{}, parseErr("time signature", text, text, 0, "expected N/D")
	}
	n, ok := parsePositive(num)
	if !ok {
		return TimeSignature{}, parseErr("time signature", text, num, 0, "numerator must be a positive integer")
	}
	d, ok := parsePositive(den)
	if !ok {
		return TimeSignature{}, parseErr("time signature", text, den, len(num)+1, "denominator must be a positive integer")
	}
	if d&(d-1) != 0 {
		return TimeSignature{}, parseErr("time signature", text, den, len(num)+1, "denominator must be a power of two")
	}
	return TimeSignature{Numerator: n, Denominator: d}, nil
}

func parsePositive(s string) (int, bool) {
	if !isDigits(s) {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

func (ts TimeSignature) String() string {
	return strconv.Itoa(ts.Numerator) + "/" + strconv.Itoa(ts.Denominator)
}

// BarLength returns the length of one bar as a fraction of a whole note.
func (ts TimeSignature) BarLength() float64 {
	return float64(ts.Numerator) / float64(ts.Denominator)
}
