package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/Conceptual-Machines/magda-theory/internal/metrics"
	"github.com/Conceptual-Machines/magda-theory/internal/services"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/gin-gonic/gin"
)

const bytesToMB = 1024 * 1024

type MetricsHandler struct {
	startTime time.Time
	version   string
	indexes   *theory.Indexes
	parses    *metrics.ParseCounter
}

// NewMetricsHandler reports on indexes and on the parses seen by counter. counter may be nil.
func NewMetricsHandler(version string, indexes *theory.Indexes, counter *metrics.ParseCounter) *MetricsHandler {
	return &MetricsHandler{
		startTime: time.Now(),
		version:   version,
		indexes:   indexes,
		parses:    counter,
	}
}

type MetricsResponse struct {
	Version    string                        `json:"version"`
	Uptime     string                        `json:"uptime"`
	StartTime  string                        `json:"start_time"`
	Catalogs   CatalogMetrics                `json:"catalogs"`
	Notations  []string                      `json:"notations"`
	Parses     map[string]metrics.ParseStats `json:"parses"`
	Goroutines int                           `json:"goroutines"`
	MemAllocMB uint64                        `json:"mem_alloc_mb"`
}

type CatalogMetrics struct {
	BuildMs int64        `json:"build_ms"`
	Chords  CatalogStats `json:"chords"`
	Scales  CatalogStats `json:"scales"`
}

// GetMetrics reports catalog sizes and build time, and parse totals per notation
func (h *MetricsHandler) GetMetrics(c *gin.Context) {
	if h.indexes == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	parses := map[string]metrics.ParseStats{}
	if h.parses != nil {
		parses = h.parses.Snapshot()
	}

	c.JSON(http.StatusOK, MetricsResponse{
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Round(time.Millisecond).String(),
		StartTime: h.startTime.UTC().Format(time.RFC3339),
		Catalogs: CatalogMetrics{
			BuildMs: h.indexes.BuildDuration.Milliseconds(),
			Chords:  catalogStats(h.indexes.Chords),
			Scales:  catalogStats(h.indexes.Scales),
		},
		Notations:  services.Notations(),
		Parses:     parses,
		Goroutines: runtime.NumGoroutine(),
		MemAllocMB: m.Alloc / bytesToMB,
	})
}
