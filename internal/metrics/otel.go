package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

const serviceName = "schedule-grid-service"

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = serviceName
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

type otelInstruments struct {
	ctx              context.Context
	meter            metric.Meter
	requests         metric.Int64Counter
	requestLatencyMs metric.Float64Histogram
	contentLoads     metric.Int64Counter
	contentErrors    metric.Int64Counter
	contentLatencyMs metric.Float64Histogram
	reloadCycles     metric.Int64Counter
	reloadErrors     metric.Int64Counter
	reloadLatencyMs  metric.Float64Histogram
	renders          metric.Int64Counter
	renderMatchdays  metric.Int64Histogram
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter(serviceName)
	ctx := context.Background()

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}

	contentLoads, err := meter.Int64Counter("content_loads_total")
	if err != nil {
		return nil, err
	}
	contentErrors, err := meter.Int64Counter("content_load_errors_total")
	if err != nil {
		return nil, err
	}
	contentLatency, err := meter.Float64Histogram("content_load_duration_ms")
	if err != nil {
		return nil, err
	}
	reloadCycles, err := meter.Int64Counter("reload_cycles_total")
	if err != nil {
		return nil, err
	}
	reloadErrors, err := meter.Int64Counter("reload_errors_total")
	if err != nil {
		return nil, err
	}
	reloadLatency, err := meter.Float64Histogram("reload_cycle_duration_ms")
	if err != nil {
		return nil, err
	}
	renders, err := meter.Int64Counter("schedule_renders_total")
	if err != nil {
		return nil, err
	}
	renderMatchdays, err := meter.Int64Histogram("schedule_render_matchdays")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		ctx:              ctx,
		meter:            meter,
		requests:         requests,
		requestLatencyMs: requestLatency,
		contentLoads:     contentLoads,
		contentErrors:    contentErrors,
		contentLatencyMs: contentLatency,
		reloadCycles:     reloadCycles,
		reloadErrors:     reloadErrors,
		reloadLatencyMs:  reloadLatency,
		renders:          renders,
		renderMatchdays:  renderMatchdays,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.recordCounter(o.requests, 1, attrs...)
	o.recordHistogram(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordContentLoad(source string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrSource, source)}
	o.recordCounter(o.contentLoads, 1, attrs...)
	o.recordHistogram(o.contentLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.recordCounter(o.contentErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordReload(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.recordCounter(o.reloadCycles, 1)
	o.recordHistogram(o.reloadLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.recordCounter(o.reloadErrors, 1)
	}
}

func (o *otelInstruments) recordRender(surface string, matchdays int, hiddenPast bool) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrSurface, surface),
		attribute.Bool(AttrHidden, hiddenPast),
	}
	o.recordCounter(o.renders, 1, attrs...)
	o.renderMatchdays.Record(o.ctx, int64(matchdays), metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordCounter(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	counter.Add(o.ctx, value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) recordHistogram(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if o == nil {
		return
	}
	hist.Record(o.ctx, value, metric.WithAttributes(attrs...))
}
