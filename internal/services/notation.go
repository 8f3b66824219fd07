package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Conceptual-Machines/magda-theory/internal/logger"
	"github.com/Conceptual-Machines/magda-theory/internal/models"
	"github.com/Conceptual-Machines/magda-theory/internal/progression"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
)

const (
	// MaxTextPreviewLength is the maximum length of input echoed into logs
	MaxTextPreviewLength = 200
)

// ErrUnknownNotation is returned for a notation name with no parser.
var ErrUnknownNotation = errors.New("unknown notation")

// Recorder receives one observation per parse.
type Recorder interface {
	RecordParse(ctx context.Context, notation string, duration time.Duration, success bool)
}

type parseFunc func(ix *theory.Indexes, text string) (any, error)

var parsers = map[string]parseFunc{
	"note": func(_ *theory.Indexes, text string) (any, error) {
		n, err := theory.ParseNote(text)
		if err != nil {
			return nil, err
		}
		return models.NewNoteView(n), nil
	},
	"notes": func(_ *theory.Indexes, text string) (any, error) {
		notes, err := theory.ParseNoteList(text)
		if err != nil {
			return nil, err
		}
		return models.NewNoteViews(notes), nil
	},
	"interval": func(_ *theory.Indexes, text string) (any, error) {
		iv, err := theory.ParseInterval(text)
		if err != nil {
			return nil, err
		}
		return models.NewIntervalView(iv), nil
	},
	"intervals": func(_ *theory.Indexes, text string) (any, error) {
		ivs, err := theory.ParseIntervalList(text)
		if err != nil {
			return nil, err
		}
		return models.NewIntervalViews(ivs), nil
	},
	"degree": func(_ *theory.Indexes, text string) (any, error) {
		d, err := theory.ParseDegree(text)
		if err != nil {
			return nil, err
		}
		return models.NewDegreeView(d), nil
	},
	"degrees": func(_ *theory.Indexes, text string) (any, error) {
		degrees, err := theory.ParseDegreeList(text)
		if err != nil {
			return nil, err
		}
		return models.NewDegreeViews(degrees), nil
	},
	"chord": func(ix *theory.Indexes, text string) (any, error) {
		c, err := ix.ParseChord(text)
		if err != nil {
			return nil, err
		}
		return models.NewChordView(c), nil
	},
	"scale": func(ix *theory.Indexes, text string) (any, error) {
		s, err := ix.ParseScale(text)
		if err != nil {
			return nil, err
		}
		return models.NewScaleView(s), nil
	},
	"bpm": func(_ *theory.Indexes, text string) (any, error) {
		b, err := theory.ParseBpm(text)
		if err != nil {
			return nil, err
		}
		return models.NewBpmView(b), nil
	},
	"time_signature": func(_ *theory.Indexes, text string) (any, error) {
		ts, err := theory.ParseTimeSignature(text)
		if err != nil {
			return nil, err
		}
		return models.NewTimeSignatureView(ts), nil
	},
	"duration": func(_ *theory.Indexes, text string) (any, error) {
		d, err := theory.ParseDuration(text)
		if err != nil {
			return nil, err
		}
		return models.NewDurationView(d), nil
	},
}

// Notations lists the notation names Parse accepts, sorted.
func Notations() []string {
	names := make([]string, 0, len(parsers))
	for name := range parsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NotationService parses notation text against the shared indexes.
type NotationService struct {
	indexes   *theory.Indexes
	recorders []Recorder
}

// NewNotationService creates a service. Recorders may be nil or omitted.
func NewNotationService(indexes *theory.Indexes, recorders ...Recorder) *NotationService {
	active := make([]Recorder, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			active = append(active, r)
		}
	}
	return &NotationService{indexes: indexes, recorders: active}
}

// Indexes returns the catalogs the service parses against.
func (s *NotationService) Indexes() *theory.Indexes { return s.indexes }

// Parse parses text as notation and returns its JSON view.
func (s *NotationService) Parse(ctx context.Context, notation, text string) (any, error) {
	parse, ok := parsers[notation]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNotation, notation)
	}

	start := time.Now()
	view, err := parse(s.indexes, text)
	s.record(ctx, notation, time.Since(start), err == nil)

	if err != nil {
		logger.Warn("Notation parse failed", logger.Fields{
			"notation": notation,
			"text":     preview(text),
			"error":    err.Error(),
		})
		return nil, err
	}
	return view, nil
}

// ParseProgression runs a progression script and returns its sheet view.
func (s *NotationService) ParseProgression(ctx context.Context, dsl string) (models.SheetView, error) {
	parser, err := progression.NewProgressionDSLParser(s.indexes)
	if err != nil {
		return models.SheetView{}, err
	}

	start := time.Now()
	sheet, err := parser.ParseDSL(ctx, dsl)
	s.record(ctx, "progression", time.Since(start), err == nil)

	if err != nil {
		logger.Warn("Progression parse failed", logger.Fields{
			"dsl":   preview(dsl),
			"error": err.Error(),
		})
		return models.SheetView{}, err
	}
	return models.NewSheetView(sheet), nil
}

func (s *NotationService) record(ctx context.Context, notation string, d time.Duration, success bool) {
	for _, r := range s.recorders {
		r.RecordParse(ctx, notation, d, success)
	}
}

func preview(text string) string {
	if len(text) <= MaxTextPreviewLength {
		return text
	}
	return text[:MaxTextPreviewLength] + "..."
}
