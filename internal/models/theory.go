package models

import (
	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
	"github.com/Conceptual-Machines/magda-theory/internal/notation"
	"github.com/Conceptual-Machines/magda-theory/internal/progression"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
)

// NoteView is the serialisable form of a note
type NoteView struct {
	Name       string `json:"name" yaml:"name"`
	Syllabic   string `json:"syllabic" yaml:"syllabic"`
	Letter     string `json:"letter" yaml:"letter"`
	Accidental int    `json:"accidental" yaml:"accidental"`
	Semitone   int    `json:"semitone" yaml:"semitone"`
	Octave     *int   `json:"octave,omitempty" yaml:"octave,omitempty"`
	MidiNote   *int   `json:"midiNoteNumber,omitempty" yaml:"midiNoteNumber,omitempty"`
}

// IntervalView is the serialisable form of an interval
type IntervalView struct {
	Short     string `json:"short" yaml:"short"`
	Long      string `json:"long" yaml:"long"`
	Semitones int    `json:"semitones" yaml:"semitones"`
	Size      int    `json:"size" yaml:"size"`
	Perfect   bool   `json:"perfect" yaml:"perfect"`
}

// DegreeView is the serialisable form of a scale degree
type DegreeView struct {
	Roman  string `json:"roman" yaml:"roman"`
	Number int    `json:"number" yaml:"number"`
}

// ChordView is a chord instantiated on a root
type ChordView struct {
	Name      string         `json:"name" yaml:"name"`
	Names     []string       `json:"names" yaml:"names"`
	Symbol    string         `json:"symbol" yaml:"symbol"`
	Root      NoteView       `json:"root" yaml:"root"`
	Intervals string         `json:"intervals" yaml:"intervals"`
	Labels    []string       `json:"labels" yaml:"labels"`
	Notes     []NoteView     `json:"notes" yaml:"notes"`
	Steps     []IntervalView `json:"steps" yaml:"steps"`
}

// ScaleView is a scale instantiated on a root
type ScaleView struct {
	Name      string     `json:"name" yaml:"name"`
	Names     []string   `json:"names" yaml:"names"`
	Root      NoteView   `json:"root" yaml:"root"`
	Intervals string     `json:"intervals" yaml:"intervals"`
	Labels    []string   `json:"labels" yaml:"labels"`
	Notes     []NoteView `json:"notes" yaml:"notes"`
}

// TimeSignatureView is the serialisable form of a meter
type TimeSignatureView struct {
	Numerator   int    `json:"numerator" yaml:"numerator"`
	Denominator int    `json:"denominator" yaml:"denominator"`
	Display     string `json:"display" yaml:"display"`
}

// DurationView is the serialisable form of a note length
type DurationView struct {
	Name     string  `json:"name" yaml:"name"`
	Fraction string  `json:"fraction" yaml:"fraction"`
	Value    float64 `json:"value" yaml:"value"`
}

// BpmView is the serialisable form of a tempo
type BpmView struct {
	Bpm          float64 `json:"bpm" yaml:"bpm"`
	BeatDuration int64   `json:"beatDurationMs" yaml:"beatDurationMs"`
}

// EventView is one chord of a sheet
type EventView struct {
	Chord      ChordView    `json:"chord" yaml:"chord"`
	Duration   DurationView `json:"duration" yaml:"duration"`
	StartBeats float64      `json:"startBeats" yaml:"startBeats"`
	Beats      float64      `json:"durationBeats" yaml:"durationBeats"`
}

// SheetView is the serialisable result of a progression script
type SheetView struct {
	Bpm           float64           `json:"bpm" yaml:"bpm"`
	TimeSignature TimeSignatureView `json:"timeSignature" yaml:"timeSignature"`
	TotalBeats    float64           `json:"totalBeats" yaml:"totalBeats"`
	Bars          float64           `json:"bars" yaml:"bars"`
	Events        []EventView       `json:"events" yaml:"events"`
}

// PitchClassView is one row of the note-name table
type PitchClassView struct {
	Semitone   int    `json:"semitone" yaml:"semitone"`
	Alphabetic string `json:"alphabetic" yaml:"alphabetic"`
	Syllabic   string `json:"syllabic" yaml:"syllabic"`
}

// CanonicalIntervalView is one row of the two-octave interval table
type CanonicalIntervalView struct {
	Semitones int    `json:"semitones" yaml:"semitones"`
	Short     string `json:"short" yaml:"short"`
	Long      string `json:"long" yaml:"long"`
	Perfect   bool   `json:"perfect" yaml:"perfect"`
}

// ChordRecordView is a catalog chord record
type ChordRecordView struct {
	Name      string   `json:"name" yaml:"name"`
	Intervals string   `json:"intervals" yaml:"intervals"`
	Labels    []string `json:"labels" yaml:"labels"`
	Full      string   `json:"full" yaml:"full"`
	Short     string   `json:"short" yaml:"short"`
	Symbol    string   `json:"symbol" yaml:"symbol"`
}

// ScaleRecordView is a catalog scale record
type ScaleRecordView struct {
	Name      string   `json:"name" yaml:"name"`
	Intervals string   `json:"intervals" yaml:"intervals"`
	Labels    []string `json:"labels" yaml:"labels"`
	Names     []string `json:"names" yaml:"names"`
}

// LabelGroupView lists the records carrying one label
type LabelGroupView[T any] struct {
	Label   string `json:"label" yaml:"label"`
	Records []T    `json:"records" yaml:"records"`
}

// NewNoteView converts a note
func NewNoteView(n theory.Note) NoteView {
	v := NoteView{
		Name:       n.String(),
		Syllabic:   n.Syllabic(),
		Letter:     notation.Letters[n.Letter].Name,
		Accidental: n.Accidental,
		Semitone:   n.Semitone(),
	}
	if n.HasOctave {
		octave := n.Octave
		v.Octave = &octave
	}
	if key, ok := n.MIDI(); ok {
		v.MidiNote = &key
	}
	return v
}

// NewNoteViews converts a note list
func NewNoteViews(notes []theory.Note) []NoteView {
	out := make([]NoteView, len(notes))
	for i, n := range notes {
		out[i] = NewNoteView(n)
	}
	return out
}

// NewIntervalView converts an interval
func NewIntervalView(iv theory.Interval) IntervalView {
	return IntervalView{
		Short:     iv.Short,
		Long:      iv.Long,
		Semitones: iv.Semitones,
		Size:      iv.Index,
		Perfect:   iv.Perfect(),
	}
}

// NewIntervalViews converts an interval list
func NewIntervalViews(ivs []theory.Interval) []IntervalView {
	out := make([]IntervalView, len(ivs))
	for i, iv := range ivs {
		out[i] = NewIntervalView(iv)
	}
	return out
}

// NewDegreeView converts a degree
func NewDegreeView(d theory.Degree) DegreeView {
	return DegreeView{Roman: d.String(), Number: int(d)}
}

// NewDegreeViews converts a degree list
func NewDegreeViews(degrees []theory.Degree) []DegreeView {
	out := make([]DegreeView, len(degrees))
	for i, d := range degrees {
		out[i] = NewDegreeView(d)
	}
	return out
}

// NewChordView converts a chord
func NewChordView(c theory.Chord) ChordView {
	return ChordView{
		Name:      c.PreferredName(),
		Names:     c.Names(),
		Symbol:    c.Symbol(),
		Root:      NewNoteView(c.Root),
		Intervals: c.IntervalsString(),
		Labels:    c.Data.Labels,
		Notes:     NewNoteViews(c.Notes()),
		Steps:     NewIntervalViews(c.Intervals),
	}
}

// NewScaleView converts a scale
func NewScaleView(s theory.Scale) ScaleView {
	return ScaleView{
		Name:      s.PreferredName(),
		Names:     s.Names(),
		Root:      NewNoteView(s.Root),
		Intervals: s.IntervalsString(),
		Labels:    s.Data.Labels,
		Notes:     NewNoteViews(s.Notes()),
	}
}

// NewTimeSignatureView converts a meter
func NewTimeSignatureView(ts theory.TimeSignature) TimeSignatureView {
	return TimeSignatureView{Numerator: ts.Numerator, Denominator: ts.Denominator, Display: ts.String()}
}

// NewDurationView converts a note length
func NewDurationView(d theory.Duration) DurationView {
	return DurationView{Name: d.Name, Fraction: d.Fraction(), Value: d.Value()}
}

// NewBpmView converts a tempo
func NewBpmView(b theory.Bpm) BpmView {
	return BpmView{Bpm: float64(b), BeatDuration: b.BeatDuration().Milliseconds()}
}

// NewSheetView converts a sheet, laying events end to end
func NewSheetView(s progression.Sheet) SheetView {
	events := make([]EventView, len(s.Events))
	start := 0.0
	for i, e := range s.Events {
		events[i] = EventView{
			Chord:      NewChordView(e.Chord),
			Duration:   NewDurationView(e.Duration),
			StartBeats: start,
			Beats:      e.Beats,
		}
		start += e.Beats
	}
	return SheetView{
		Bpm:           float64(s.Bpm),
		TimeSignature: NewTimeSignatureView(s.TimeSignature),
		TotalBeats:    s.TotalBeats(),
		Bars:          s.Bars(),
		Events:        events,
	}
}

// PitchClassTable lists the twelve pitch classes with both spellings
func PitchClassTable() []PitchClassView {
	out := make([]PitchClassView, len(notation.NoteNames))
	for i, n := range notation.NoteNames {
		out[i] = PitchClassView{Semitone: i, Alphabetic: n.Alphabetic, Syllabic: n.Syllabic}
	}
	return out
}

// IntervalTable lists the canonical interval of every width up to two octaves
func IntervalTable() ([]CanonicalIntervalView, error) {
	out := make([]CanonicalIntervalView, len(notation.Intervals))
	for semis := range notation.Intervals {
		iv, err := theory.IntervalFromSemitones(semis)
		if err != nil {
			return nil, err
		}
		out[semis] = CanonicalIntervalView{
			Semitones: semis,
			Short:     iv.Short,
			Long:      iv.Long,
			Perfect:   iv.Perfect(),
		}
	}
	return out, nil
}

// NewChordRecordView converts a catalog chord record
func NewChordRecordView(c *catalog.ChordData) ChordRecordView {
	return ChordRecordView{
		Name:      c.PreferredName(),
		Intervals: c.Intervals,
		Labels:    c.Labels,
		Full:      c.Full,
		Short:     c.Short,
		Symbol:    c.Symbol,
	}
}

// NewScaleRecordView converts a catalog scale record
func NewScaleRecordView(s *catalog.ScaleData) ScaleRecordView {
	return ScaleRecordView{
		Name:      s.PreferredName(),
		Intervals: s.Intervals,
		Labels:    s.Labels,
		Names:     s.NameList,
	}
}

// GroupRecords converts label data with convert, keeping label order
func GroupRecords[T catalog.Record, V any](groups []catalog.LabelGroup[T], convert func(*T) V) []LabelGroupView[V] {
	out := make([]LabelGroupView[V], len(groups))
	for i, g := range groups {
		records := make([]V, len(g.Entries))
		for j, e := range g.Entries {
			records[j] = convert(e.Record)
		}
		out[i] = LabelGroupView[V]{Label: g.Label, Records: records}
	}
	return out
}

// FlattenRecords converts the flattened label map with convert
func FlattenRecords[T any, V any](byLabel map[string][]*T, convert func(*T) V) map[string][]V {
	out := make(map[string][]V, len(byLabel))
	for label, records := range byLabel {
		views := make([]V, len(records))
		for i, r := range records {
			views[i] = convert(r)
		}
		out[label] = views
	}
	return out
}
