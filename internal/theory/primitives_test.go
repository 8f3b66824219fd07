package theory

import (
	"errors"
	"testing"
	"time"

	"github.com/Conceptual-Machines/magda-theory/internal/notation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		semitone  int
		display   string
		syllabic  string
		hasOctave bool
		octave    int
	}{
		{"natural", "C", 0, "C", "Do", false, 0},
		{"sharp with octave", "C#4", 1, "C#4", "Do#", true, 4},
		{"flat", "Bb", 10, "Bb", "Sib", false, 0},
		{"enharmonic flat", "Db", 1, "Db", "Reb", false, 0},
		{"double sharp", "F##", 7, "F##", "Fa##", false, 0},
		{"double flat", "Ebb3", 2, "Ebb3", "Mibb", true, 3},
		{"cb wraps down", "Cb", 11, "Cb", "Dob", false, 0},
		{"b sharp wraps up", "B#", 0, "B#", "Si#", false, 0},
		{"negative octave", "A-1", 9, "A-1", "La", true, -1},
		{"two digit octave", "G10", 7, "G10", "Sol", true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNote(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.semitone, n.Semitone())
			assert.Equal(t, tt.display, n.String())
			assert.Equal(t, tt.syllabic, n.Syllabic())
			assert.Equal(t, tt.hasOctave, n.HasOctave)
			assert.Equal(t, tt.octave, n.Octave)
		})
	}
}

func TestParseNote_Errors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		token  string
		offset int
	}{
		{"empty", "", "", 0},
		{"unknown letter", "H", "H", 0},
		{"lower case letter", "c4", "c", 0},
		{"mixed accidentals", "C#b", "#b", 1},
		{"too many accidentals", "C###", "###", 1},
		{"malformed octave", "C#x", "x", 2},
		{"signed octave", "C+4", "+4", 1},
		{"trailing garbage", "C4x", "4x", 1},
		{"dangling minus", "D-", "-", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseNote(tt.text)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, "note", perr.Grammar)
			assert.Equal(t, tt.token, perr.Token)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.Equal(t, -1, perr.Item)
		})
	}
}

func TestParseNote_RoundTrip(t *testing.T) {
	for _, text := range []string{"C", "C#4", "Db", "Bb-1", "E##2", "Fbb", "G7", "A0"} {
		t.Run(text, func(t *testing.T) {
			n, err := ParseNote(text)
			require.NoError(t, err)
			again, err := ParseNote(n.String())
			require.NoError(t, err)
			assert.Equal(t, n, again)
		})
	}
}

func TestNote_SpellingSensitiveEquality(t *testing.T) {
	cs, _ := ParseNote("C#4")
	db, _ := ParseNote("Db4")

	assert.NotEqual(t, cs, db)
	assert.Equal(t, cs.Semitone(), db.Semitone())
	assert.True(t, cs.PitchEqual(db))

	bs, _ := ParseNote("B#3")
	c4, _ := ParseNote("C4")
	assert.True(t, bs.PitchEqual(c4))

	c, _ := ParseNote("C")
	assert.False(t, c.PitchEqual(c4))
}

func TestNote_MIDI(t *testing.T) {
	tests := map[string]int{"C4": 60, "A4": 69, "C-1": 0, "Cb4": 59, "B#3": 60, "G9": 127}
	for text, want := range tests {
		n, err := ParseNote(text)
		require.NoError(t, err)
		key, ok := n.MIDI()
		require.True(t, ok)
		assert.Equal(t, want, key, text)
	}

	n, _ := ParseNote("C")
	_, ok := n.MIDI()
	assert.False(t, ok)
}

func TestNote_Names(t *testing.T) {
	n, err := ParseNote("F#3")
	require.NoError(t, err)
	assert.Equal(t, "F#3", n.PreferredName())
	assert.Equal(t, []string{"F#3", "Fa#3"}, n.Names())
}

func TestNote_Transpose(t *testing.T) {
	tests := []struct {
		root, interval, want string
	}{
		{"C4", "M3", "E4"},
		{"E", "m3", "G"},
		{"Eb", "M3", "G"},
		{"D", "m3", "F"},
		{"B3", "m3", "D4"},
		{"F#", "M3", "A#"},
		{"Gb", "M3", "Bb"},
		{"C4", "A4", "F#4"},
		{"C4", "d5", "Gb4"},
		{"B", "d5", "F"},
		{"C#", "d7", "Bb"},
		{"C4", "P8", "C5"},
		{"A4", "M9", "B5"},
		{"G#", "M3", "B#"},
	}

	for _, tt := range tests {
		t.Run(tt.root+"+"+tt.interval, func(t *testing.T) {
			root, err := ParseNote(tt.root)
			require.NoError(t, err)
			iv, err := ParseInterval(tt.interval)
			require.NoError(t, err)
			assert.Equal(t, tt.want, root.Transpose(iv).String())
		})
	}
}

func TestIntervalBetween(t *testing.T) {
	tests := []struct {
		a, b, want string
	}{
		{"C", "E", "M3"},
		{"B", "D", "m3"},
		{"B", "F", "d5"},
		{"C", "G#", "A5"},
		{"C4", "C5", "P8"},
		{"C4", "D5", "M9"},
		{"B4", "F5", "d5"},
		{"C", "C", "P1"},
		{"B#", "C", "d2"},
	}

	for _, tt := range tests {
		t.Run(tt.a+"-"+tt.b, func(t *testing.T) {
			a, _ := ParseNote(tt.a)
			b, _ := ParseNote(tt.b)
			iv, err := IntervalBetween(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, iv.Short)
			assert.Equal(t, b.String(), a.Transpose(iv).String())
		})
	}

	c5, _ := ParseNote("C5")
	c4, _ := ParseNote("C4")
	_, err := IntervalBetween(c5, c4)
	require.Error(t, err)
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		text    string
		semis   int
		index   int
		long    string
		perfect bool
	}{
		{"P1", 0, 1, "perfect unison", true},
		{"m3", 3, 3, "minor third", false},
		{"M3", 4, 3, "major third", false},
		{"P5", 7, 5, "perfect fifth", true},
		{"A4", 6, 4, "augmented fourth", true},
		{"d5", 6, 5, "diminished fifth", true},
		{"d7", 9, 7, "diminished seventh", false},
		{"M9", 14, 9, "major ninth", false},
		{"P11", 17, 11, "perfect eleventh", true},
		{"M13", 21, 13, "major thirteenth", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			iv, err := ParseInterval(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.semis, iv.Semitones)
			assert.Equal(t, tt.index, iv.Index)
			assert.Equal(t, tt.text, iv.Short)
			assert.Equal(t, tt.long, iv.Long)
			assert.Equal(t, tt.perfect, iv.Perfect())
			assert.Equal(t, []string{tt.text, tt.long}, iv.Names())
		})
	}
}

func TestParseInterval_Errors(t *testing.T) {
	for _, text := range []string{"", "P", "X5", "M5", "P3", "m4", "d1", "P0", "P05", "M16", "P-1", "p5"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseInterval(text)
			require.Error(t, err)
			var perr *ParseError
			assert.True(t, errors.As(err, &perr))
		})
	}
}

func TestIntervalFromSemitones_CanonicalTable(t *testing.T) {
	for semis := 0; semis <= notation.MaxIntervalSemitones; semis++ {
		iv, err := IntervalFromSemitones(semis)
		require.NoError(t, err)
		assert.Equal(t, semis, iv.Semitones)
		assert.Equal(t, notation.Intervals[semis].Short, iv.Short)
		assert.Equal(t, notation.Intervals[semis].Long, iv.Long)
	}

	_, err := IntervalFromSemitones(25)
	assert.Error(t, err)
	_, err = IntervalFromSemitones(-1)
	assert.Error(t, err)
}

func TestParseDegree(t *testing.T) {
	tests := map[string]Degree{"I": 1, "ii": 2, "III": 3, "iV": 4, "V": 5, "vi": 6, "VII": 7}
	for text, want := range tests {
		d, err := ParseDegree(text)
		require.NoError(t, err, text)
		assert.Equal(t, want, d)
	}

	for _, text := range []string{"", "VIII", "IIII", "0", "X", "1", " I"} {
		_, err := ParseDegree(text)
		assert.Error(t, err, text)
	}
	assert.Equal(t, "IV", Degree(4).String())
	assert.Equal(t, "Degree(9)", Degree(9).String())
}

func TestParseDegreeList(t *testing.T) {
	degrees, err := ParseDegreeList("I,II,III")
	require.NoError(t, err)
	assert.Equal(t, []Degree{1, 2, 3}, degrees)

	degrees, err = ParseDegreeList(" i , iv ,V ")
	require.NoError(t, err)
	assert.Equal(t, []Degree{1, 4, 5}, degrees)
}

func TestParseList_EmptyToken(t *testing.T) {
	degrees, err := ParseDegreeList("I,,III")
	require.Error(t, err)
	assert.Nil(t, degrees)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "degree list", perr.Grammar)
	assert.Equal(t, 1, perr.Item)
	assert.Equal(t, "", perr.Token)
	assert.Equal(t, 2, perr.Offset)
	assert.Equal(t, "empty token", perr.Reason)
}

func TestParseList_InvalidElement(t *testing.T) {
	notes, err := ParseNoteList("C, Db, H4, E")
	require.Error(t, err)
	assert.Nil(t, notes)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "note list", perr.Grammar)
	assert.Equal(t, 2, perr.Item)
	assert.Equal(t, "H4", perr.Token)
	assert.Equal(t, 7, perr.Offset)

	var inner *ParseError
	require.True(t, errors.As(perr.Unwrap(), &inner))
	assert.Equal(t, "note", inner.Grammar)
}

func TestParseList_Empty(t *testing.T) {
	_, err := ParseNoteList("  ")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "empty list", perr.Reason)
}

func TestParseNoteList(t *testing.T) {
	notes, err := ParseNoteList("C,Db,D,Eb")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "Db", "D", "Eb"}, []string{notes[0].String(), notes[1].String(), notes[2].String(), notes[3].String()})
}

func TestParseBpm(t *testing.T) {
	bpm, err := ParseBpm("90")
	require.NoError(t, err)
	assert.Equal(t, Bpm(90), bpm)
	assert.Equal(t, "90", bpm.String())
	assert.Equal(t, 500*time.Millisecond, Bpm(120).BeatDuration())

	bpm, err = ParseBpm("72.5")
	require.NoError(t, err)
	assert.Equal(t, Bpm(72.5), bpm)

	for _, text := range []string{"", "fast", "0", "-90", "NaN", "Inf", "1000.5", "0x1p4", "1e2", "+90", "90.", ".5", " 90"} {
		_, err := ParseBpm(text)
		assert.Error(t, err, text)
	}
	_, err = ParseBpm("1000")
	assert.NoError(t, err)
}

func TestParseTimeSignature(t *testing.T) {
	ts, err := ParseTimeSignature("4/4")
	require.NoError(t, err)
	assert.Equal(t, TimeSignature{Numerator: 4, Denominator: 4}, ts)
	assert.Equal(t, "4/4", ts.String())
	assert.Equal(t, 1.0, ts.BarLength())
	assert.Equal(t, 0.75, TimeSignature{Numerator: 6, Denominator: 8}.BarLength())

	for _, text := range []string{"3/4", "6/8", "7/16", "5/1", "12/8", "2/2"} {
		_, err := ParseTimeSignature(text)
		assert.NoError(t, err, text)
	}

	for _, text := range []string{"4/0", "0/4", "4/3", "4/6", "4", "4/4/4", "a/4", "4/-4", "-4/4", "4/", "/4", " 4/4"} {
		_, err := ParseTimeSignature(text)
		assert.Error(t, err, text)
	}
}

func TestParseTimeSignature_ErrorToken(t *testing.T) {
	_, err := ParseTimeSignature("4/3")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "3", perr.Token)
	assert.Equal(t, 2, perr.Offset)
	assert.Equal(t, "denominator must be a power of two", perr.Reason)
}

func TestParseDuration(t *testing.T) {
	tests := map[string]int{"whole": 1, "half": 2, "quarter": 4, "Eighth": 8, "sixteenth": 16, "1/4": 4, "1/16": 16}
	for text, den := range tests {
		d, err := ParseDuration(text)
		require.NoError(t, err, text)
		assert.Equal(t, den, d.Denominator)
		back, ok := DurationFromValue(d.Value())
		require.True(t, ok)
		assert.Equal(t, d, back)
	}

	_, err := ParseDuration("triplet")
	assert.Error(t, err)
	_, ok := DurationFromValue(0.3)
	assert.False(t, ok)

	half, _ := ParseDuration("half")
	assert.Equal(t, 2.0, half.Beats(CommonTime))
	assert.Equal(t, 4.0, half.Beats(TimeSignature{Numerator: 6, Denominator: 8}))
	assert.Equal(t, []string{"half", "1/2"}, half.Names())
}

func TestDisplayNames(t *testing.T) {
	n, _ := ParseNote("C4")
	iv, _ := ParseInterval("P5")
	d, _ := ParseDuration("quarter")
	assert.Equal(t, []string{"C4", "P5", "quarter"}, DisplayNames(n, iv, d))
}
