package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/magda-theory/internal/logger"
	"github.com/Conceptual-Machines/magda-theory/internal/services"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors to HTTP responses. Errors of no known type get
// fallbackStatus.
func writeError(c *gin.Context, err error, fallbackStatus int) {
	var (
		parseErr   *theory.ParseError
		unknownErr *theory.UnknownNameError
	)

	switch {
	case errors.As(err, &parseErr):
		body := gin.H{
			"error":    err.Error(),
			"grammar":  parseErr.Grammar,
			"token":    parseErr.Token,
			"position": parseErr.Offset,
		}
		if parseErr.Item >= 0 {
			body["item"] = parseErr.Item
		}
		c.JSON(http.StatusBadRequest, body)

	case errors.As(err, &unknownErr):
		c.JSON(http.StatusNotFound, gin.H{
			"error":    err.Error(),
			"category": unknownErr.Category,
			"name":     unknownErr.Name,
		})

	case errors.Is(err, services.ErrUnknownNotation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"notations": services.Notations(),
		})

	default:
		if fallbackStatus >= http.StatusInternalServerError {
			logger.Error("Request failed", err, logger.WithContext(c))
		}
		c.JSON(fallbackStatus, gin.H{"error": err.Error()})
	}
}
