package progression

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/Conceptual-Machines/grammar-school-go/gs"
	"github.com/Conceptual-Machines/magda-theory/internal/logger"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/Conceptual-Machines/magda-theory/internal/validation"
)

// Defaults applied when the DSL does not set them.
const (
	DefaultBpm      theory.Bpm = 120
	DefaultDuration            = "quarter"
	maxRepeat                  = 64
)

// Event is one chord held for Duration. Beats is the duration counted in the sheet's
// meter.
type Event struct {
	Chord    theory.Chord
	Duration theory.Duration
	Beats    float64
}

// Sheet is the result of running a progression script.
type Sheet struct {
	Bpm           theory.Bpm
	TimeSignature theory.TimeSignature
	Events        []Event
}

// TotalBeats sums the beats of every event.
func (s Sheet) TotalBeats() float64 {
	total := 0.0
	for _, e := range s.Events {
		total += e.Beats
	}
	return total
}

// Bars returns the length of the sheet in bars of its meter.
func (s Sheet) Bars() float64 {
	if s.TimeSignature.Numerator == 0 {
		return 0
	}
	var whole float64
	for _, e := range s.Events {
		whole += e.Duration.Value()
	}
	return whole / s.TimeSignature.BarLength()
}

// ProgressionDSLParser runs progression scripts with grammar-school. It keeps
// per-call state, so create one per request.
type ProgressionDSLParser struct {
	engine         *gs.Engine
	progressionDSL *ProgressionDSL
	indexes        *theory.Indexes
	sheet          Sheet
	failure        error
}

// ProgressionDSL implements the DSL side-effect methods.
type ProgressionDSL struct {
	parser *ProgressionDSLParser
}

// NewProgressionDSLParser creates a parser resolving chords and scales against indexes.
func NewProgressionDSLParser(indexes *theory.Indexes) (*ProgressionDSLParser, error) {
	if indexes == nil {
		return nil, fmt.Errorf("progression parser needs built indexes")
	}

	parser := &ProgressionDSLParser{
		progressionDSL: &ProgressionDSL{},
		indexes:        indexes,
	}
	parser.progressionDSL.parser = parser

	engine, err := gs.NewEngine(GetProgressionDSLGrammar(), parser.progressionDSL, gs.NewLarkParser())
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	parser.engine = engine
	return parser, nil
}

// ParseDSL runs dslCode and returns the resulting sheet.
func (p *ProgressionDSLParser) ParseDSL(ctx context.Context, dslCode string) (Sheet, error) {
	dslCode = strings.TrimSpace(dslCode)
	if dslCode == "" {
		return Sheet{}, fmt.Errorf("empty DSL code")
	}

	p.sheet = Sheet{Bpm: DefaultBpm, TimeSignature: theory.CommonTime}
	p.failure = nil

	if err := p.engine.Execute(ctx, dslCode); err != nil {
		// Keep the typed handler error reachable through errors.As.
		if p.failure != nil {
			return Sheet{}, fmt.Errorf("failed to execute DSL: %w", p.failure)
		}
		return Sheet{}, fmt.Errorf("failed to execute DSL: %w", err)
	}

	if len(p.sheet.Events) == 0 {
		return Sheet{}, fmt.Errorf("no chords found in DSL code")
	}

	// The meter may be set after the first chord, so beats are counted last.
	for i := range p.sheet.Events {
		p.sheet.Events[i].Beats = p.sheet.Events[i].Duration.Beats(p.sheet.TimeSignature)
	}

	logger.Debug("Progression DSL parsed", logger.Fields{
		"events": len(p.sheet.Events),
		"bpm":    p.sheet.Bpm.String(),
		"meter":  p.sheet.TimeSignature.String(),
	})
	return p.sheet, nil
}

// Tempo handles tempo(bpm=N).
func (d *ProgressionDSL) Tempo(args gs.Args) error {
	v, ok := args["bpm"]
	if !ok || v.Kind != gs.ValueNumber {
		return d.fail(fmt.Errorf("tempo: missing bpm"))
	}
	bpm, err := theory.ParseBpm(strconv.FormatFloat(v.Num, 'f', -1, 64))
	if err != nil {
		return d.fail(fmt.Errorf("tempo: %w", err))
	}
	d.parser.sheet.Bpm = bpm
	return nil
}

// Meter handles meter(signature="N/D").
func (d *ProgressionDSL) Meter(args gs.Args) error {
	text := stringArg(args, "signature")
	if text == "" {
		return d.fail(fmt.Errorf("meter: missing signature"))
	}
	ts, err := theory.ParseTimeSignature(text)
	if err != nil {
		return d.fail(fmt.Errorf("meter: %w", err))
	}
	d.parser.sheet.TimeSignature = ts
	return nil
}

// Chord handles chord(symbol="C4_major7", duration="half", repeat=N).
func (d *ProgressionDSL) Chord(args gs.Args) error {
	p := d.parser

	symbol := stringArg(args, "symbol")
	if symbol == "" {
		return d.fail(fmt.Errorf("chord: missing symbol"))
	}
	chord, err := p.indexes.ParseChord(symbol)
	if err != nil {
		return d.fail(fmt.Errorf("chord: %w", err))
	}

	dur, err := durationArg(args)
	if err != nil {
		return d.fail(fmt.Errorf("chord: %w", err))
	}
	repeat, err := repeatArg(args)
	if err != nil {
		return d.fail(fmt.Errorf("chord: %w", err))
	}

	for i := 0; i < repeat; i++ {
		p.sheet.Events = append(p.sheet.Events, Event{Chord: chord, Duration: dur})
	}
	return nil
}

// Progression handles progression(scale="C_major", degrees="I,IV,V", ...), harmonizing
// each degree as a triad, or as a seventh chord when sevenths=true.
func (d *ProgressionDSL) Progression(args gs.Args) error {
	p := d.parser

	scaleText := stringArg(args, "scale")
	if scaleText == "" {
		return d.fail(fmt.Errorf("progression: missing scale"))
	}
	scale, err := p.indexes.ParseScale(scaleText)
	if err != nil {
		return d.fail(fmt.Errorf("progression: %w", err))
	}

	degreesText := stringArg(args, "degrees")
	if degreesText == "" {
		return d.fail(fmt.Errorf("progression: missing degrees"))
	}
	degrees, err := theory.ParseDegreeList(degreesText)
	if err != nil {
		return d.fail(fmt.Errorf("progression: %w", err))
	}

	size := theory.Triad
	if v, ok := args["sevenths"]; ok && sevenths(v) {
		size = theory.Seventh
	}

	dur, err := durationArg(args)
	if err != nil {
		return d.fail(fmt.Errorf("progression: %w", err))
	}
	repeat, err := repeatArg(args)
	if err != nil {
		return d.fail(fmt.Errorf("progression: %w", err))
	}

	chords := make([]theory.Chord, len(degrees))
	for i, deg := range degrees {
		chords[i], err = theory.Harmonize(p.indexes.Chords, scale, deg, size)
		if err != nil {
			return d.fail(fmt.Errorf("progression: %w", err))
		}
	}

	for r := 0; r < repeat; r++ {
		for _, c := range chords {
			p.sheet.Events = append(p.sheet.Events, Event{Chord: c, Duration: dur})
		}
	}
	return nil
}

// fail remembers the first handler error of the current run.
func (d *ProgressionDSL) fail(err error) error {
	if d.parser.failure == nil {
		d.parser.failure = err
	}
	return err
}

func stringArg(args gs.Args, name string) string {
	if v, ok := args[name]; ok && v.Kind == gs.ValueString {
		return strings.Trim(v.Str, "\"")
	}
	return ""
}

func durationArg(args gs.Args) (theory.Duration, error) {
	text := stringArg(args, "duration")
	if text == "" {
		text = DefaultDuration
	}
	return theory.ParseDuration(text)
}

func repeatArg(args gs.Args) (int, error) {
	v, ok := args["repeat"]
	if !ok || v.Kind != gs.ValueNumber {
		return 1, nil
	}
	n := int(v.Num)
	if float64(n) != v.Num || n < 1 || n > maxRepeat {
		return 0, fmt.Errorf("repeat must be a whole number in 1-%d, got %v", maxRepeat, v.Num)
	}
	return n, nil
}

func sevenths(v gs.Value) bool {
	switch v.Kind {
	case gs.ValueBool:
		return v.Bool
	case gs.ValueString:
		return validation.ParseBooleanLike(strings.Trim(v.Str, "\""))
	}
	return false
}
