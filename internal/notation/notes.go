package notation

// SemitonesPerOctave is the size of the pitch-class cycle.
const SemitonesPerOctave = 12

// LettersPerOctave is the size of the diatonic letter cycle.
const LettersPerOctave = 7

// MaxAccidentals bounds the accidental run accepted in a note token ("##", "bb").
const MaxAccidentals = 2

// Accidental symbols as they appear in note tokens.
const (
	Sharp = '#'
	Flat  = 'b'
)

// Letter describes one natural note of the diatonic cycle.
type Letter struct {
	Name     string // "C"
	Syllable string // "Do"
	Semitone int    // offset from C
}

// Letters lists the naturals in C-major order; the slice position is the letter index
// used for spelling arithmetic.
var Letters = [LettersPerOctave]Letter{
	{Name: "C", Syllable: "Do", Semitone: 0},
	{Name: "D", Syllable: "Re", Semitone: 2},
	{Name: "E", Syllable: "Mi", Semitone: 4},
	{Name: "F", Syllable: "Fa", Semitone: 5},
	{Name: "G", Syllable: "Sol", Semitone: 7},
	{Name: "A", Syllable: "La", Semitone: 9},
	{Name: "B", Syllable: "Si", Semitone: 11},
}

// NoteName is the canonical spelling of a pitch class.
type NoteName struct {
	Alphabetic string
	Syllabic   string
}

// NoteNames maps every pitch class to its canonical (sharp) spelling.
var NoteNames = [SemitonesPerOctave]NoteName{
	{"C", "Do"},
	{"C#", "Do#"},
	{"D", "Re"},
	{"D#", "Re#"},
	{"E", "Mi"},
	{"F", "Fa"},
	{"F#", "Fa#"},
	{"G", "Sol"},
	{"G#", "Sol#"},
	{"A", "La"},
	{"A#", "La#"},
	{"B", "Si"},
}

// LetterIndex returns the position of a natural letter in Letters.
func LetterIndex(r byte) (int, bool) {
	for i, l := range Letters {
		if l.Name[0] == r {
			return i, true
		}
	}
	return 0, false
}

// NoteNameFor returns the canonical name of a semitone offset, reduced mod 12.
func NoteNameFor(semitone int) NoteName {
	return NoteNames[Mod(semitone, SemitonesPerOctave)]
}

// AccidentalString renders an accidental offset as a run of sharps or flats.
func AccidentalString(offset int) string {
	sym := byte(Sharp)
	if offset < 0 {
		sym = Flat
		offset = -offset
	}
	buf := make([]byte, offset)
	for i := range buf {
		buf[i] = sym
	}
	return string(buf)
}

// Mod is the floored modulo: the result always has the sign of m.
func Mod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// FloorDiv divides rounding towards negative infinity.
func FloorDiv(n, m int) int {
	q := n / m
	if (n%m != 0) && ((n < 0) != (m < 0)) {
		q--
	}
	return q
}
