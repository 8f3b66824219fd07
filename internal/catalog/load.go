package catalog

import (
	"bytes"
	"fmt"

	"github.com/Conceptual-Machines/magda-theory/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ChordTable is the on-disk form of the chord records.
type ChordTable struct {
	Labels []string    `yaml:"labels"`
	Chords []ChordData `yaml:"chords"`
}

// ScaleTable is the on-disk form of the scale records.
type ScaleTable struct {
	Labels []string    `yaml:"labels"`
	Scales []ScaleData `yaml:"scales"`
}

// LoadChordTable decodes a chord table, rejecting unknown fields.
func LoadChordTable(data []byte) (ChordTable, error) {
	var t ChordTable
	if err := decodeStrict(data, &t); err != nil {
		return ChordTable{}, fmt.Errorf("failed to decode chord table: %w", err)
	}
	return t, nil
}

// LoadScaleTable decodes a scale table, rejecting unknown fields.
func LoadScaleTable(data []byte) (ScaleTable, error) {
	var t ScaleTable
	if err := decodeStrict(data, &t); err != nil {
		return ScaleTable{}, fmt.Errorf("failed to decode scale table: %w", err)
	}
	return t, nil
}

// DefaultChordTable returns the chord records shipped with the binary.
func DefaultChordTable() (ChordTable, error) {
	return LoadChordTable(embedded.ChordsYAML)
}

// DefaultScaleTable returns the scale records shipped with the binary.
func DefaultScaleTable() (ScaleTable, error) {
	return LoadScaleTable(embedded.ScalesYAML)
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}
