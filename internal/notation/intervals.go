package notation

// MaxIntervalSize is the largest generic size with an ordinal name (double octave).
const MaxIntervalSize = 15

// MaxIntervalSemitones is the span of the canonical interval table (two octaves).
const MaxIntervalSemitones = 24

// Interval quality symbols.
const (
	Perfect    = 'P'
	Major      = 'M'
	Minor      = 'm'
	Augmented  = 'A'
	Diminished = 'd'
)

// QualityWords spells out each quality symbol.
var QualityWords = map[byte]string{
	Perfect:    "perfect",
	Major:      "major",
	Minor:      "minor",
	Augmented:  "augmented",
	Diminished: "diminished",
}

// Ordinals names generic sizes 1..15; index 0 is unused.
var Ordinals = [MaxIntervalSize + 1]string{
	"",
	"unison",
	"second",
	"third",
	"fourth",
	"fifth",
	"sixth",
	"seventh",
	"octave",
	"ninth",
	"tenth",
	"eleventh",
	"twelfth",
	"thirteenth",
	"fourteenth",
	"fifteenth",
}

// diatonicSemitones holds the major/perfect width of generic sizes 1..7.
var diatonicSemitones = [LettersPerOctave]int{0, 2, 4, 5, 7, 9, 11}

// IntervalName is the canonical spelling of an interval width.
type IntervalName struct {
	Short string
	Long  string
}

// Intervals maps every semitone width 0..24 to its canonical name.
var Intervals = [MaxIntervalSemitones + 1]IntervalName{
	{"P1", "perfect unison"},
	{"m2", "minor second"},
	{"M2", "major second"},
	{"m3", "minor third"},
	{"M3", "major third"},
	{"P4", "perfect fourth"},
	{"A4", "augmented fourth"},
	{"P5", "perfect fifth"},
	{"m6", "minor sixth"},
	{"M6", "major sixth"},
	{"m7", "minor seventh"},
	{"M7", "major seventh"},
	{"P8", "perfect octave"},
	{"m9", "minor ninth"},
	{"M9", "major ninth"},
	{"m10", "minor tenth"},
	{"M10", "major tenth"},
	{"P11", "perfect eleventh"},
	{"A11", "augmented eleventh"},
	{"P12", "perfect twelfth"},
	{"m13", "minor thirteenth"},
	{"M13", "major thirteenth"},
	{"m14", "minor fourteenth"},
	{"M14", "major fourteenth"},
	{"P15", "perfect fifteenth"},
}

// ReducedSize folds a generic size into 1..7: ((n-1) mod 7) + 1.
func ReducedSize(n int) int {
	return Mod(n-1, LettersPerOctave) + 1
}

// IsIntervalPerfect reports whether a generic size belongs to the perfect family
// (unison, fourth, fifth and their compounds). It is total over the integers.
func IsIntervalPerfect(n int) bool {
	switch ReducedSize(n) {
	case 1, 4, 5:
		return true
	}
	return false
}

// DiatonicSemitones returns the major or perfect width of a generic size >= 1.
func DiatonicSemitones(size int) int {
	octaves := FloorDiv(size-1, LettersPerOctave)
	return diatonicSemitones[ReducedSize(size)-1] + octaves*SemitonesPerOctave
}

// QualityOffset returns the semitone adjustment of a quality relative to the major or
// perfect width of the size. ok is false when the quality does not apply to the size.
func QualityOffset(quality byte, size int) (offset int, ok bool) {
	perfect := IsIntervalPerfect(size)
	switch quality {
	case Perfect:
		return 0, perfect
	case Major:
		return 0, !perfect
	case Minor:
		return -1, !perfect
	case Augmented:
		return 1, true
	case Diminished:
		if perfect {
			return -1, true
		}
		return -2, true
	}
	return 0, false
}

// QualityFor inverts QualityOffset: it names the quality of an interval of the given
// size whose width differs from the diatonic width by offset.
func QualityFor(size, offset int) (byte, bool) {
	if IsIntervalPerfect(size) {
		switch offset {
		case 0:
			return Perfect, true
		case 1:
			return Augmented, true
		case -1:
			return Diminished, true
		}
		return 0, false
	}
	switch offset {
	case 0:
		return Major, true
	case -1:
		return Minor, true
	case 1:
		return Augmented, true
	case -2:
		return Diminished, true
	}
	return 0, false
}

// LongIntervalName spells out a quality and size, e.g. "diminished fifth".
func LongIntervalName(quality byte, size int) string {
	if size < 1 || size > MaxIntervalSize {
		return ""
	}
	word, ok := QualityWords[quality]
	if !ok {
		return ""
	}
	return word + " " + Ordinals[size]
}
