package notation

// RomanNumerals names scale degrees 1..7; index 0 is unused.
var RomanNumerals = [LettersPerOctave + 1]string{"", "I", "II", "III", "IV", "V", "VI", "VII"}

// DurationName ties a note-length name to the denominator of its fraction of a whole note.
type DurationName struct {
	Name        string
	Denominator int
}

// Durations lists the supported note lengths from longest to shortest.
var Durations = [...]DurationName{
	{"whole", 1},
	{"half", 2},
	{"quarter", 4},
	{"eighth", 8},
	{"sixteenth", 16},
}
