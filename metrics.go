package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/global"
	export "go.opentelemetry.io/otel/sdk/export/metric"
	"go.opentelemetry.io/otel/sdk/metric/aggregator/histogram"
	controller "go.opentelemetry.io/otel/sdk/metric/controller/basic"
	processor "go.opentelemetry.io/otel/sdk/metric/processor/basic"
	selector "go.opentelemetry.io/otel/sdk/metric/selector/simple"
)

// newPrometheusExporter installs the global meter provider backed by a
// prometheus exporter. The exporter doubles as the /metrics handler.
func newPrometheusExporter() (*prometheus.Exporter, error) {
	config := prometheus.Config{}
	c := controller.New(
		processor.New(
			selector.NewWithHistogramDistribution(
				histogram.WithExplicitBoundaries(config.DefaultHistogramBoundaries),
			),
			export.CumulativeExportKindSelector(),
			processor.WithMemory(true),
		),
	)

	exporter, err := prometheus.New(config, c)
	if err != nil {
		return nil, err
	}
	global.SetMeterProvider(exporter.MeterProvider())

	return exporter, nil
}

type metrics struct {
	completed metric.Int64Counter
	latency   metric.Float64ValueRecorder
}

func newMetrics(meter metric.Meter) *metrics {
	return &metrics{
		completed: metric.Must(meter).NewInt64Counter(
			"http/server/completed_count",
			metric.WithDescription("Count of completed requests, by HTTP method and response status"),
		),
		latency: metric.Must(meter).NewFloat64ValueRecorder(
			"http/server/latency",
			metric.WithDescription("Request latency in milliseconds, by HTTP method and response status"),
			metric.WithUnit("ms"),
		),
	}
}

// Middleware records one completed request per call.
func (m *metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		labels := []attribute.KeyValue{
			attribute.String("method", r.Method),
			attribute.String("status", strconv.Itoa(statusOf(ww))),
		}
		m.completed.Add(r.Context(), 1, labels...)
		m.latency.Record(r.Context(), float64(time.Since(start))/float64(time.Millisecond), labels...)
	})
}
