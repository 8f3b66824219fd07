package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/gin-gonic/gin"
)

// CatalogStats is the size of one catalog.
type CatalogStats struct {
	Records int `json:"records"`
	Names   int `json:"names"`
	Labels  int `json:"labels"`
}

func catalogStats[T catalog.Record](idx *catalog.Index[T]) CatalogStats {
	return CatalogStats{Records: idx.Len(), Names: idx.NameCount(), Labels: len(idx.Labels())}
}

type HealthHandler struct {
	indexes *theory.Indexes
}

func NewHealthHandler(indexes *theory.Indexes) *HealthHandler {
	return &HealthHandler{indexes: indexes}
}

// HealthCheck returns the health status of the API and the size of each catalog
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.indexes == nil || h.indexes.Chords == nil || h.indexes.Scales == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"catalogs": gin.H{
			"chords": catalogStats(h.indexes.Chords),
			"scales": catalogStats(h.indexes.Scales),
		},
	})
}
