package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Conceptual-Machines/magda-theory/internal/models"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseRecord struct {
	notation string
	success  bool
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []parseRecord
}

func (f *fakeRecorder) RecordParse(_ context.Context, notation string, _ time.Duration, success bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, parseRecord{notation: notation, success: success})
}

func newTestService(t *testing.T, recorders ...Recorder) *NotationService {
	t.Helper()
	ix, err := theory.BuildIndexes()
	require.NoError(t, err)
	return NewNotationService(ix, recorders...)
}

func TestNotationService_Parse(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		notation string
		text     string
		check    func(t *testing.T, view any)
	}{
		{"note", "C#4", func(t *testing.T, view any) {
			v := view.(models.NoteView)
			assert.Equal(t, "C#4", v.Name)
			assert.Equal(t, "Do#", v.Syllabic)
			require.NotNil(t, v.MidiNote)
			assert.Equal(t, 61, *v.MidiNote)
		}},
		{"notes", "C,E,G", func(t *testing.T, view any) {
			assert.Len(t, view.([]models.NoteView), 3)
		}},
		{"interval", "d5", func(t *testing.T, view any) {
			v := view.(models.IntervalView)
			assert.Equal(t, 6, v.Semitones)
			assert.True(t, v.Perfect)
		}},
		{"intervals", "P1,M3,P5", func(t *testing.T, view any) {
			assert.Len(t, view.([]models.IntervalView), 3)
		}},
		{"degree", "iv", func(t *testing.T, view any) {
			assert.Equal(t, models.DegreeView{Roman: "IV", Number: 4}, view)
		}},
		{"degrees", "I,II,III", func(t *testing.T, view any) {
			assert.Len(t, view.([]models.DegreeView), 3)
		}},
		{"chord", "C4_major7", func(t *testing.T, view any) {
			v := view.(models.ChordView)
			assert.Equal(t, "C4_major7", v.Name)
			assert.Equal(t, "P1,M3,P5,M7", v.Intervals)
			assert.Equal(t, []string{"seventh"}, v.Labels)
		}},
		{"scale", "A_minor", func(t *testing.T, view any) {
			v := view.(models.ScaleView)
			assert.Equal(t, "A_minor", v.Name)
			assert.Len(t, v.Notes, 7)
		}},
		{"bpm", "120", func(t *testing.T, view any) {
			assert.Equal(t, models.BpmView{Bpm: 120, BeatDuration: 500}, view)
		}},
		{"time_signature", "6/8", func(t *testing.T, view any) {
			assert.Equal(t, "6/8", view.(models.TimeSignatureView).Display)
		}},
		{"duration", "1/8", func(t *testing.T, view any) {
			assert.Equal(t, "eighth", view.(models.DurationView).Name)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			view, err := svc.Parse(ctx, tt.notation, tt.text)
			require.NoError(t, err)
			tt.check(t, view)
		})
	}
}

func TestNotationService_ParseErrors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Parse(ctx, "tablature", "e|---")
	assert.ErrorIs(t, err, ErrUnknownNotation)

	_, err = svc.Parse(ctx, "degrees", "I,,III")
	var perr *theory.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 1, perr.Item)

	_, err = svc.Parse(ctx, "chord", "C_nope")
	var uerr *theory.UnknownNameError
	assert.True(t, errors.As(err, &uerr))
}

func TestNotationService_RecordsOutcome(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestService(t, rec, nil)
	ctx := context.Background()

	_, _ = svc.Parse(ctx, "note", "C")
	_, _ = svc.Parse(ctx, "note", "H")
	_, _ = svc.Parse(ctx, "unknown", "x")

	assert.Equal(t, []parseRecord{{"note", true}, {"note", false}}, rec.records)
}

func TestNotationService_ParseProgression(t *testing.T) {
	rec := &fakeRecorder{}
	svc := newTestService(t, rec)

	sheet, err := svc.ParseProgression(context.Background(), `tempo(bpm=100); progression(scale="C_major", degrees="I,V,vi,IV", duration="whole")`)
	require.NoError(t, err)
	assert.Equal(t, 100.0, sheet.Bpm)
	require.Len(t, sheet.Events, 4)
	assert.Equal(t, 12.0, sheet.Events[3].StartBeats)
	assert.Equal(t, 16.0, sheet.TotalBeats)
	assert.Equal(t, 4.0, sheet.Bars)
	assert.Equal(t, []parseRecord{{"progression", true}}, rec.records)
}

func TestNotations(t *testing.T) {
	names := Notations()
	assert.Contains(t, names, "time_signature")
	assert.Len(t, names, 11)
	assert.IsIncreasing(t, names)
}
