package handlers

import (
	"fmt"
	"net/http"

	"github.com/Conceptual-Machines/magda-theory/internal/services"
	"github.com/gin-gonic/gin"
)

type ParseHandler struct {
	service *services.NotationService
}

func NewParseHandler(service *services.NotationService) *ParseHandler {
	return &ParseHandler{service: service}
}

type ParseRequest struct {
	Notation string `json:"notation" binding:"required"`
	Text     string `json:"text"`
}

type ParseResponse struct {
	Notation string `json:"notation"`
	Text     string `json:"text"`
	Result   any    `json:"result"`
}

type ProgressionRequest struct {
	DSL string `json:"dsl" binding:"required"`
}

// Parse parses one notation token or list
func (h *ParseHandler) Parse(c *gin.Context) {
	var req ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.Text) > maxTextLength {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("text exceeds %d bytes", maxTextLength)})
		return
	}

	result, err := h.service.Parse(c.Request.Context(), req.Notation, req.Text)
	if err != nil {
		writeError(c, err, http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, ParseResponse{Notation: req.Notation, Text: req.Text, Result: result})
}

// Progression runs a progression script and returns the resulting sheet
func (h *ParseHandler) Progression(c *gin.Context) {
	var req ProgressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.DSL) > maxDSLLength {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("dsl exceeds %d bytes", maxDSLLength)})
		return
	}

	sheet, err := h.service.ParseProgression(c.Request.Context(), req.DSL)
	if err != nil {
		// Anything that is not a typed theory error is a malformed script.
		writeError(c, err, http.StatusBadRequest)
		return
	}

	c.JSON(http.StatusOK, sheet)
}
