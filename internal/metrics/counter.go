package metrics

import (
	"context"
	"sync"
	"time"
)

// ParseStats is the running total for one notation.
type ParseStats struct {
	Success       int64   `json:"success"`
	Failure       int64   `json:"failure"`
	AvgLatencyUs  float64 `json:"avg_latency_us"`
	totalDuration time.Duration
}

// ParseCounter keeps in-process parse totals per notation for the metrics endpoint.
type ParseCounter struct {
	mu    sync.Mutex
	stats map[string]*ParseStats
}

func NewParseCounter() *ParseCounter {
	return &ParseCounter{stats: make(map[string]*ParseStats)}
}

// RecordParse counts one parse; it satisfies services.Recorder
func (p *ParseCounter) RecordParse(_ context.Context, notation string, duration time.Duration, success bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	s, ok := p.stats[notation]
	if !ok {
		s = &ParseStats{}
		p.stats[notation] = s
	}
	if success {
		s.Success++
	} else {
		s.Failure++
	}
	s.totalDuration += duration
}

// Snapshot copies the current totals.
func (p *ParseCounter) Snapshot() map[string]ParseStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make(map[string]ParseStats, len(p.stats))
	for notation, s := range p.stats {
		c := *s
		if n := c.Success + c.Failure; n > 0 {
			c.AvgLatencyUs = float64(c.totalDuration.Microseconds()) / float64(n)
		}
		out[notation] = c
	}
	return out
}
