package metrics

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

const (
	namespace                = "MAGDA/Theory"
	httpStatusServerError    = 500
	cloudwatchTimeoutSeconds = 5
)

// putter is the part of the CloudWatch client the metrics code uses.
type putter interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Client wraps CloudWatch client for custom metrics
type Client struct {
	client      putter
	enabled     bool
	environment string
}

// NewClient creates a new CloudWatch metrics client. It only talks to CloudWatch in
// production with metrics enabled; otherwise every Record call is a no-op.
func NewClient(ctx context.Context, environment string, enabled bool) (*Client, error) {
	if environment != "production" || !enabled {
		log.Printf("📊 CloudWatch Metrics: DISABLED (environment: %s, enabled: %t)", environment, enabled)
		return &Client{
			enabled:     false,
			environment: environment,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		log.Printf("⚠️  Failed to load AWS config for CloudWatch: %v", err)
		return &Client{enabled: false, environment: environment}, nil
	}

	client := cloudwatch.NewFromConfig(cfg)
	log.Printf("📊 CloudWatch Metrics: ✅ ENABLED (namespace: %s)", namespace)

	return &Client{
		client:      client,
		enabled:     true,
		environment: environment,
	}, nil
}

// Enabled reports whether metrics are sent
func (m *Client) Enabled() bool { return m.enabled }

// RecordAPIRequest records an API request metric
func (m *Client) RecordAPIRequest(endpoint string, statusCode int, duration time.Duration) {
	if !m.enabled {
		return
	}

	go func() {
		ctx := context.Background()
		metricName := "APIRequests"
		if statusCode >= httpStatusServerError {
			metricName = "APIErrors"
		}

		dimensions := []types.Dimension{
			{
				Name:  aws.String("Endpoint"),
				Value: aws.String(endpoint),
			},
			{
				Name:  aws.String("Environment"),
				Value: aws.String(m.environment),
			},
		}

		if err := m.putMetric(ctx, metricName, 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record %s metric: %v", metricName, err)
		}

		latencyMs := float64(duration.Milliseconds())
		if err := m.putMetric(ctx, "APILatency", latencyMs, types.StandardUnitMilliseconds, dimensions); err != nil {
			log.Printf("Failed to record APILatency metric: %v", err)
		}
	}()
}

// RecordParse records one notation parse; it satisfies services.Recorder
func (m *Client) RecordParse(_ context.Context, notation string, duration time.Duration, success bool) {
	if !m.enabled {
		return
	}

	go func() {
		ctx := context.Background()
		dimensions := parseDimensions(notation, success, m.environment)

		if err := m.putMetric(ctx, "Parses", 1, types.StandardUnitCount, dimensions); err != nil {
			log.Printf("Failed to record Parses metric: %v", err)
		}

		latencyUs := float64(duration.Microseconds())
		if err := m.putMetric(ctx, "ParseLatency", latencyUs, types.StandardUnitMicroseconds, dimensions); err != nil {
			log.Printf("Failed to record ParseLatency metric: %v", err)
		}
	}()
}

func parseDimensions(notation string, success bool, environment string) []types.Dimension {
	return []types.Dimension{
		{
			Name:  aws.String("Notation"),
			Value: aws.String(notation),
		},
		{
			Name:  aws.String("Success"),
			Value: aws.String(boolToString(success)),
		},
		{
			Name:  aws.String("Environment"),
			Value: aws.String(environment),
		},
	}
}

// putMetric sends a metric to CloudWatch
func (m *Client) putMetric(
	_ context.Context,
	metricName string,
	value float64,
	unit types.StandardUnit,
	dimensions []types.Dimension,
) error {
	if !m.enabled || m.client == nil {
		return nil
	}

	timeout := time.Duration(cloudwatchTimeoutSeconds) * time.Second
	cwCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, err := m.client.PutMetricData(cwCtx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Value:      aws.Float64(value),
				Unit:       unit,
				Timestamp:  aws.Time(time.Now()),
				Dimensions: dimensions,
			},
		},
	})

	return err
}

func boolToString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
