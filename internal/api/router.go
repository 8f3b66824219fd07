package api

import (
	"github.com/Conceptual-Machines/magda-theory/internal/api/handlers"
	apimiddleware "github.com/Conceptual-Machines/magda-theory/internal/api/middleware"
	"github.com/Conceptual-Machines/magda-theory/internal/config"
	"github.com/Conceptual-Machines/magda-theory/internal/metrics"
	"github.com/Conceptual-Machines/magda-theory/internal/services"
	"github.com/Conceptual-Machines/magda-theory/internal/theory"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route. indexes must be fully built; cw may be nil.
func SetupRouter(cfg *config.Config, version string, indexes *theory.Indexes, cw *metrics.Client) *gin.Engine {
	router := gin.New()

	// Recovery middleware (must be first)
	router.Use(apimiddleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(apimiddleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(apimiddleware.RequestTracking(cw))

	// CORS middleware
	router.Use(apimiddleware.CORS(cfg.AllowedOrigins))

	// Health check
	healthHandler := handlers.NewHealthHandler(indexes)
	router.GET("/health", healthHandler.HealthCheck)

	// Metrics endpoint
	parseCounter := metrics.NewParseCounter()
	metricsHandler := handlers.NewMetricsHandler(version, indexes, parseCounter)
	router.GET("/api/metrics", metricsHandler.GetMetrics)

	recorders := []services.Recorder{metrics.NewSentryMetrics(), parseCounter}
	if cw != nil && cw.Enabled() {
		recorders = append(recorders, cw)
	}
	notationService := services.NewNotationService(indexes, recorders...)

	v1 := router.Group("/api/v1")
	{
		// Static notation tables
		v1.GET("/notation/notes", handlers.ListNotes)
		v1.GET("/notation/intervals", handlers.ListIntervals)

		// Catalogs
		catalogHandler := handlers.NewCatalogHandler(indexes)
		v1.GET("/chords", catalogHandler.ListChords)
		v1.GET("/chords/:name", catalogHandler.GetChord)
		v1.GET("/scales", catalogHandler.ListScales)
		v1.GET("/scales/:name", catalogHandler.GetScale)

		// Parsing
		parseHandler := handlers.NewParseHandler(notationService)
		v1.POST("/parse", parseHandler.Parse)
		v1.POST("/progression", parseHandler.Progression)
	}

	return router
}
