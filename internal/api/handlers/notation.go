package handlers

import (
	"net/http"

	"github.com/Conceptual-Machines/magda-theory/internal/models"
	"github.com/gin-gonic/gin"
)

// ListNotes returns the twelve pitch classes with their alphabetic and syllabic names
func ListNotes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notes": models.PitchClassTable()})
}

// ListIntervals returns the canonical interval for every width up to two octaves
func ListIntervals(c *gin.Context) {
	table, err := models.IntervalTable()
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"intervals": table})
}
