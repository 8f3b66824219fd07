package theory

import (
	"errors"
	"testing"

	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndexes(t *testing.T) *Indexes {
	t.Helper()
	ix, err := BuildIndexes()
	require.NoError(t, err)
	return ix
}

func noteNames(notes []Note) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

func semitones(ivs []Interval) []int {
	out := make([]int, len(ivs))
	for i, iv := range ivs {
		out[i] = iv.Semitones
	}
	return out
}

func TestParseChord_WithOctave(t *testing.T) {
	ix := testIndexes(t)

	c, err := ix.ParseChord("C4_major7")
	require.NoError(t, err)
	assert.Equal(t, "C4", c.Root.String())
	assert.True(t, c.Root.HasOctave)
	assert.Equal(t, 4, c.Root.Octave)
	assert.Equal(t, []int{0, 4, 7, 11}, semitones(c.Intervals))
	assert.Equal(t, "P1,M3,P5,M7", c.IntervalsString())
	assert.Equal(t, []string{"C4", "E4", "G4", "B4"}, noteNames(c.Notes()))
	assert.Equal(t, "C4_major7", c.PreferredName())
	assert.Equal(t, []string{"C4_major7", "C4_maj7", "C4_M7"}, c.Names())
	assert.Equal(t, "CM7", c.Symbol())
}

func TestParseChord_Forms(t *testing.T) {
	ix := testIndexes(t)

	tests := []struct {
		text  string
		root  string
		full  string
		notes []string
	}{
		{"Cmaj7", "C", "major7", []string{"C", "E", "G", "B"}},
		{"C7", "C", "dominant7", []string{"C", "E", "G", "Bb"}},
		{"C5", "C", "power", []string{"C", "G"}},
		{"Bbm7", "Bb", "minor7", []string{"Bb", "Db", "F", "Ab"}},
		{"F#_minor", "F#", "minor", []string{"F#", "A", "C#"}},
		{"Eb3_dim7", "Eb3", "diminished7", []string{"Eb3", "Gb3", "Bbb3", "Dbb4"}},
		{"Dsus4", "D", "suspended4", []string{"D", "G", "A"}},
		{"G9", "G", "dominant9", []string{"G", "B", "D", "F", "A"}},
		{"A_m7b5", "A", "halfdiminished7", []string{"A", "C", "Eb", "G"}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			c, err := ix.ParseChord(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.root, c.Root.String())
			assert.Equal(t, tt.full, c.Data.Full)
			assert.Equal(t, tt.notes, noteNames(c.Notes()))
		})
	}
}

func TestParseChord_SharesCatalogRecord(t *testing.T) {
	ix := testIndexes(t)

	a, err := ix.ParseChord("Cmaj7")
	require.NoError(t, err)
	b, err := ix.ParseChord("D_major7")
	require.NoError(t, err)
	assert.Same(t, a.Data, b.Data)

	rec, ok := ix.Chords.Lookup("M7")
	require.True(t, ok)
	assert.Same(t, rec, a.Data)
}

func TestParseChord_Errors(t *testing.T) {
	ix := testIndexes(t)

	t.Run("unknown name", func(t *testing.T) {
		_, err := ix.ParseChord("C4_notachord")
		var uerr *UnknownNameError
		require.True(t, errors.As(err, &uerr))
		assert.Equal(t, "chord", uerr.Category)
		assert.Equal(t, "notachord", uerr.Name)
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		_, err := ix.ParseChord("C_Major7")
		var uerr *UnknownNameError
		assert.True(t, errors.As(err, &uerr))
	})

	t.Run("bad root", func(t *testing.T) {
		_, err := ix.ParseChord("H_major")
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "chord", perr.Grammar)
		assert.Equal(t, "H_major", perr.Input)
		assert.Equal(t, "H", perr.Token)
		assert.Equal(t, 0, perr.Offset)

		var noteErr *ParseError
		require.True(t, errors.As(perr.Err, &noteErr))
		assert.Equal(t, "note", noteErr.Grammar)
	})

	t.Run("bad root accidentals keep their position", func(t *testing.T) {
		_, err := ix.ParseChord("C#b4_major7")
		var perr *ParseError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "C#b4_major7", perr.Input)
		assert.Equal(t, 1, perr.Offset)
	})

	t.Run("missing name", func(t *testing.T) {
		for _, text := range []string{"C4_", "Eb"} {
			_, err := ix.ParseChord(text)
			var perr *ParseError
			require.True(t, errors.As(err, &perr), text)
			assert.Equal(t, "missing chord name", perr.Reason)
		}
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ix.ParseChord("")
		assert.Error(t, err)
	})
}

func TestParseChord_NilIndexPanics(t *testing.T) {
	assert.Panics(t, func() { _, _ = ParseChord(nil, "C_major") })
	assert.Panics(t, func() { _, _ = ParseScale(nil, "C_major") })
}

func TestParseScale(t *testing.T) {
	ix := testIndexes(t)

	s, err := ix.ParseScale("C4_major")
	require.NoError(t, err)
	octave, ok := s.Octave()
	assert.True(t, ok)
	assert.Equal(t, 4, octave)
	assert.Equal(t, []string{"C4", "D4", "E4", "F4", "G4", "A4", "B4"}, noteNames(s.Notes()))
	assert.Equal(t, "C4_major", s.PreferredName())
	assert.Equal(t, []string{"C4_major", "C4_ionian"}, s.Names())

	s, err = ix.ParseScale("F#_dorian")
	require.NoError(t, err)
	_, ok = s.Octave()
	assert.False(t, ok)
	assert.Equal(t, []string{"F#", "G#", "A", "B", "C#", "D#", "E"}, noteNames(s.Notes()))

	s, err = ix.ParseScale("A_minorpentatonic")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D", "E", "G"}, noteNames(s.Notes()))
}

func TestParseScale_Errors(t *testing.T) {
	ix := testIndexes(t)

	_, err := ix.ParseScale("Cmajor")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "expected Note_ScaleName", perr.Reason)

	_, err = ix.ParseScale("C_")
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "missing scale name", perr.Reason)

	_, err = ix.ParseScale("C_bebop")
	var uerr *UnknownNameError
	require.True(t, errors.As(err, &uerr))
	assert.Equal(t, "scale", uerr.Category)

	_, err = ix.ParseScale("C4x_major")
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "scale", perr.Grammar)
	assert.Equal(t, "C4x_major", perr.Input)
	assert.Equal(t, "4x", perr.Token)
	assert.Equal(t, 1, perr.Offset)
}

func TestScale_NoteAndStack(t *testing.T) {
	ix := testIndexes(t)
	s, err := ix.ParseScale("C4_major")
	require.NoError(t, err)

	n, err := s.Note(5)
	require.NoError(t, err)
	assert.Equal(t, "G4", n.String())

	_, err = s.Note(8)
	assert.Error(t, err)

	stack, err := s.Stack(7, Seventh)
	require.NoError(t, err)
	assert.Equal(t, []string{"B4", "D5", "F5", "A5"}, noteNames(stack))

	_, err = s.Stack(1, 0)
	assert.Error(t, err)
}

func TestHarmonize(t *testing.T) {
	ix := testIndexes(t)
	s, err := ix.ParseScale("C_major")
	require.NoError(t, err)

	tests := []struct {
		degree Degree
		size   int
		want   string
	}{
		{1, Triad, "C_major"},
		{2, Triad, "D_minor"},
		{3, Triad, "E_minor"},
		{4, Triad, "F_major"},
		{5, Triad, "G_major"},
		{6, Triad, "A_minor"},
		{7, Triad, "B_diminished"},
		{1, Seventh, "C_major7"},
		{2, Seventh, "D_minor7"},
		{5, Seventh, "G_dominant7"},
		{7, Seventh, "B_halfdiminished7"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			c, err := Harmonize(ix.Chords, s, tt.degree, tt.size)
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.PreferredName())
		})
	}
}

func TestHarmonize_AnchoredScale(t *testing.T) {
	ix := testIndexes(t)
	s, err := ix.ParseScale("A3_harmonicminor")
	require.NoError(t, err)

	c, err := Harmonize(ix.Chords, s, 5, Seventh)
	require.NoError(t, err)
	assert.Equal(t, "E4_dominant7", c.PreferredName())
	assert.Equal(t, []string{"E4", "G#4", "B4", "D5"}, noteNames(c.Notes()))

	c, err = Harmonize(ix.Chords, s, 3, Triad)
	require.NoError(t, err)
	assert.Equal(t, "C4_augmented", c.PreferredName())
}

func TestHarmonize_Errors(t *testing.T) {
	ix := testIndexes(t)
	s, err := ix.ParseScale("C_major")
	require.NoError(t, err)

	_, err = Harmonize(ix.Chords, s, 1, 5)
	assert.Error(t, err)

	_, err = Harmonize(ix.Chords, s, 0, Triad)
	assert.Error(t, err)

	wt, err := ix.ParseScale("C_wholetone")
	require.NoError(t, err)
	c, err := Harmonize(ix.Chords, wt, 1, Triad)
	require.NoError(t, err)
	assert.Equal(t, "augmented", c.Data.Full)
}

func TestParseProgression(t *testing.T) {
	ix := testIndexes(t)
	s, err := ix.ParseScale("G_major")
	require.NoError(t, err)

	chords, err := ParseProgression(ix.Chords, s, "I,vi,IV,V")
	require.NoError(t, err)
	assert.Equal(t, []string{"G_major", "E_minor", "C_major", "D_major"}, DisplayNames(chords[0], chords[1], chords[2], chords[3]))

	_, err = ParseProgression(ix.Chords, s, "I,,V")
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Item)
}

func TestNewIndexes_Integrity(t *testing.T) {
	chords, err := catalog.DefaultChordTable()
	require.NoError(t, err)
	scales, err := catalog.DefaultScaleTable()
	require.NoError(t, err)

	t.Run("defaults", func(t *testing.T) {
		ix, err := NewIndexes(chords, scales)
		require.NoError(t, err)
		assert.Equal(t, len(chords.Chords), ix.Chords.Len())
		assert.Equal(t, len(scales.Scales), ix.Scales.Len())
	})

	tests := []struct {
		name      string
		intervals string
	}{
		{"not canonical", "P1, M3, P5"},
		{"unparsable", "P1,X3,P5"},
		{"no unison", "M3,P5"},
		{"descending", "P1,P5,M3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := chords
			bad.Chords = append([]catalog.ChordData{{
				Intervals: tt.intervals,
				Labels:    []string{"triad"},
				Full:      "broken",
			}}, chords.Chords...)

			_, err := BuildChordIndex(bad)
			var ierr *catalog.IndexIntegrityError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tt.intervals, ierr.Key)
		})
	}

	t.Run("scale beyond octave", func(t *testing.T) {
		bad := scales
		bad.Scales = []catalog.ScaleData{{Intervals: "P1,M3,P5,M9", Labels: []string{"diatonic"}, NameList: []string{"wide"}}}
		_, err := BuildScaleIndex(bad)
		var ierr *catalog.IndexIntegrityError
		assert.True(t, errors.As(err, &ierr))
	})

	t.Run("scale reusing a letter", func(t *testing.T) {
		bad := scales
		bad.Scales = []catalog.ScaleData{{Intervals: "P1,m3,M3,P5", Labels: []string{"diatonic"}, NameList: []string{"blue"}}}
		_, err := BuildScaleIndex(bad)
		var ierr *catalog.IndexIntegrityError
		assert.True(t, errors.As(err, &ierr))
	})
}
