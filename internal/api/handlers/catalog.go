package handlers

import (
	"fmt"
	"net/http"

	"github.com/Conceptual-Machines/magda-theory/internal/catalog"
	"github.com/Conceptual-Machines/magda-theory/internal/models"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/Conceptual-Machines/magda-theory/internal/validation"
	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	indexes *theory.Indexes
}

func NewCatalogHandler(indexes *theory.Indexes) *CatalogHandler {
	return &CatalogHandler{indexes: indexes}
}

// ListChords returns the chord catalog grouped by label. ?label= narrows to one label,
// ?flat=yes returns the label -> records map instead of the ordered groups.
func (h *CatalogHandler) ListChords(c *gin.Context) {
	listRecords(c, h.indexes.Chords, "chords", models.NewChordRecordView)
}

// ListScales is ListChords for the scale catalog.
func (h *CatalogHandler) ListScales(c *gin.Context) {
	listRecords(c, h.indexes.Scales, "scales", models.NewScaleRecordView)
}

// GetChord resolves any chord name to its record
func (h *CatalogHandler) GetChord(c *gin.Context) {
	getRecord(c, h.indexes.Chords, models.NewChordRecordView)
}

// GetScale resolves any scale name to its record
func (h *CatalogHandler) GetScale(c *gin.Context) {
	getRecord(c, h.indexes.Scales, models.NewScaleRecordView)
}

func listRecords[T catalog.Record, V any](c *gin.Context, idx *catalog.Index[T], key string, convert func(*T) V) {
	if label, ok := c.GetQuery(queryLabel); ok {
		records := idx.ByLabel(label)
		if records == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error":  fmt.Sprintf("unknown %s label %q", idx.Category(), label),
				"labels": idx.Labels(),
			})
			return
		}
		views := make([]V, len(records))
		for i, r := range records {
			views[i] = convert(r)
		}
		c.JSON(http.StatusOK, gin.H{"label": label, key: views})
		return
	}

	if validation.ParseBooleanLike(c.Query(queryFlat)) {
		c.JSON(http.StatusOK, gin.H{key: models.FlattenRecords(idx.ByLabelData(), convert)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"labels": idx.Labels(),
		key:      models.GroupRecords(idx.LabelData(), convert),
	})
}

func getRecord[T catalog.Record, V any](c *gin.Context, idx *catalog.Index[T], convert func(*T) V) {
	name := c.Param("name")
	rec, ok := idx.Lookup(name)
	if !ok {
		writeError(c, &theory.UnknownNameError{Category: idx.Category(), Name: name, Input: name}, http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, convert(rec))
}
