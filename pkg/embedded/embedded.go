package embedded

import (
	_ "embed"
)

// Record tables for the chord and scale indexes.
//
//go:embed data/chords.yaml
var ChordsYAML []byte

//go:embed data/scales.yaml
var ScalesYAML []byte
