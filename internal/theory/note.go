package theory

import (
	"strconv"

	"github.com/Conceptual-Machines/magda-theory/internal/notation"
)

// Note is a spelled pitch: a natural letter, an accidental offset and an optional
// octave. Two notes are == only when they are spelled the same, so C# and Db differ.
type Note struct {
	Letter     int // index into notation.Letters
	Accidental int // +1 per sharp, -1 per flat
	Octave     int
	HasOctave  bool
}

// ParseNote parses Letter[A-G] Accidental{0,2} Octave?, e.g. "C#4", "Bb", "Dbb-1".
func ParseNote(text string) (Note, error) {
	n, consumed, err := scanNote(text, "note")
	if err != nil {
		return Note{}, err
	}
	rest := text[consumed:]
	if rest == "" {
		return n, nil
	}
	octave, ok := parseSignedInt(rest)
	if !ok {
		return Note{}, parseErr("note", text, rest, consumed, "malformed octave")
	}
	n.Octave = octave
	n.HasOctave = true
	return n, nil
}

// ParseNoteList parses a comma-separated list of notes.
func ParseNoteList(text string) ([]Note, error) {
	return ParseList(text, "note", ParseNote)
}

// scanNote reads the letter and accidental run at the start of text and reports how
// many bytes it consumed.
func scanNote(text, grammar string) (Note, int, error) {
	if text == "" {
		return Note{}, 0, parseErr(grammar, text, "", 0, "empty note")
	}
	letter, ok := notation.LetterIndex(text[0])
	if !ok {
		return Note{}, 0, parseErr(grammar, text, text[:1], 0, "unknown note letter")
	}

	i := 1
	acc := 0
	for i < len(text) && (text[i] == notation.Sharp || text[i] == notation.Flat) {
		step := 1
		if text[i] == notation.Flat {
			step = -1
		}
		if acc != 0 && (acc > 0) != (step > 0) {
			return Note{}, 0, parseErr(grammar, text, text[1:i+1], 1, "mixed sharps and flats")
		}
		acc += step
		i++
	}
	if i-1 > notation.MaxAccidentals {
		return Note{}, 0, parseErr(grammar, text, text[1:i], 1, "too many accidentals")
	}
	return Note{Letter: letter, Accidental: acc}, i, nil
}

func parseSignedInt(s string) (int, bool) {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	if !isDigits(digits) {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Semitone returns the pitch class 0..11.
func (n Note) Semitone() int {
	return notation.Mod(n.natural()+n.Accidental, notation.SemitonesPerOctave)
}

func (n Note) natural() int { return notation.Letters[n.Letter].Semitone }

// Name returns the alphabetic spelling without octave, e.g. "C#".
func (n Note) Name() string {
	return notation.Letters[n.Letter].Name + notation.AccidentalString(n.Accidental)
}

// Syllabic returns the solfege spelling without octave, e.g. "Do#".
func (n Note) Syllabic() string {
	return notation.Letters[n.Letter].Syllable + notation.AccidentalString(n.Accidental)
}

func (n Note) String() string { return n.Name() + n.octaveSuffix() }

func (n Note) octaveSuffix() string {
	if !n.HasOctave {
		return ""
	}
	return strconv.Itoa(n.Octave)
}

func (n Note) PreferredName() string { return n.String() }

func (n Note) Names() []string {
	return []string{n.String(), n.Syllabic() + n.octaveSuffix()}
}

// WithOctave returns the note anchored at octave.
func (n Note) WithOctave(octave int) Note {
	n.Octave = octave
	n.HasOctave = true
	return n
}

// MIDI returns the MIDI key number (C4 = 60). ok is false for notes without octave.
func (n Note) MIDI() (key int, ok bool) {
	if !n.HasOctave {
		return 0, false
	}
	return (n.Octave+1)*notation.SemitonesPerOctave + n.natural() + n.Accidental, true
}

// PitchEqual reports whether two notes sound the same regardless of spelling. Notes
// with octaves compare absolute pitch; notes without compare pitch class.
func (n Note) PitchEqual(o Note) bool {
	if n.HasOctave != o.HasOctave {
		return false
	}
	if !n.HasOctave {
		return n.Semitone() == o.Semitone()
	}
	a, _ := n.MIDI()
	b, _ := o.MIDI()
	return a == b
}

// Transpose moves the note up by iv, spelling the result on the letter iv.Index-1 steps
// above, e.g. E + m3 = G, B3 + m3 = D4, Eb + M3 = G.
func (n Note) Transpose(iv Interval) Note {
	steps := n.Letter + iv.Index - 1
	letter := notation.Mod(steps, notation.LettersPerOctave)
	shift := notation.FloorDiv(steps, notation.LettersPerOctave)

	target := n.natural() + n.Accidental + iv.Semitones
	natural := notation.Letters[letter].Semitone + shift*notation.SemitonesPerOctave

	out := Note{Letter: letter, Accidental: target - natural, Octave: n.Octave, HasOctave: n.HasOctave}
	if out.HasOctave {
		out.Octave += shift
	}
	return out
}

// IntervalBetween measures the ascending interval from a to b. When both notes carry an
// octave the distance is absolute; otherwise b is taken as the nearest note at or above a.
func IntervalBetween(a, b Note) (Interval, error) {
	var steps, semis int
	if a.HasOctave && b.HasOctave {
		steps = (b.Letter + b.Octave*notation.LettersPerOctave) - (a.Letter + a.Octave*notation.LettersPerOctave)
		ka, _ := a.MIDI()
		kb, _ := b.MIDI()
		semis = kb - ka
	} else {
		steps = notation.Mod(b.Letter-a.Letter, notation.LettersPerOctave)
		semis = (b.natural() + b.Accidental) - (a.natural() + a.Accidental)
		if b.Letter < a.Letter {
			semis += notation.SemitonesPerOctave
		}
	}
	if steps < 0 || semis < 0 {
		return Interval{}, &ParseError{
			Grammar: "interval",
			Input:   a.String() + "-" + b.String(),
			Token:   b.String(),
			Item:    -1,
			Reason:  "descending interval",
		}
	}
	return newInterval(steps+1, semis, a.String()+"-"+b.String())
}
