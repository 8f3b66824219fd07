package metrics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
)

const (
	// HTTP status code threshold for considering a request successful
	successStatusCodeThreshold = http.StatusBadRequest
)

// SentryMetrics handles custom metrics for Sentry
type SentryMetrics struct {
	enabled bool
}

// NewSentryMetrics creates a new Sentry metrics client
func NewSentryMetrics() *SentryMetrics {
	return &SentryMetrics{
		enabled: true, // Always enabled if Sentry is configured
	}
}

// RecordAPIRequest records API request metrics
func (m *SentryMetrics) RecordAPIRequest(ctx context.Context, endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "api.request")
	defer span.Finish()

	span.SetTag("endpoint", endpoint)
	span.SetTag("status_code", fmt.Sprintf("%d", statusCode))
	span.SetTag("success", fmt.Sprintf("%t", statusCode < successStatusCodeThreshold))

	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("endpoint", endpoint)
	span.SetData("status_code", statusCode)

	if statusCode < successStatusCodeThreshold {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInternalError
	}

	span.Description = fmt.Sprintf("API Request: %s", endpoint)
}

// RecordParse records one notation parse as a child span of the request
func (m *SentryMetrics) RecordParse(ctx context.Context, notation string, duration time.Duration, success bool) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(ctx, "theory.parse")
	defer span.Finish()

	span.SetTag("notation", notation)
	span.SetTag("success", fmt.Sprintf("%t", success))
	span.SetData("duration_us", duration.Microseconds())

	if success {
		span.Status = sentry.SpanStatusOK
	} else {
		span.Status = sentry.SpanStatusInvalidArgument
	}

	span.Description = fmt.Sprintf("Parse: %s", notation)
}

// RecordCatalogBuild records how long building the catalogs took at startup
func (m *SentryMetrics) RecordCatalogBuild(duration time.Duration, chords, scales int) {
	if !m.enabled {
		return
	}

	span := sentry.StartSpan(context.Background(), "theory.catalog_build")
	span.Description = "Catalog build"
	span.SetData("duration_ms", duration.Milliseconds())
	span.SetData("chords", chords)
	span.SetData("scales", scales)
	span.Status = sentry.SpanStatusOK
	span.Finish()
}
