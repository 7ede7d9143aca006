package gateway

import (
	"context"
	"fmt"
	"time"

	gogogrpc "github.com/cosmos/gogoproto/grpc"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricsdk "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tracerName = "github.com/agentpay-chain/agentpay/gateway"

// newTracer returns a tracer and its shutdown func. Without an endpoint the
// tracer is a no-op.
func newTracer(ctx context.Context, cfg Config) (trace.Tracer, func(context.Context) error, error) {
	if cfg.OTLPEndpoint == "" {
		return noop.NewTracerProvider().Tracer(tracerName), func(context.Context) error { return nil }, nil
	}

	client := otlptracehttp.NewClient(
		otlptracehttp.WithEndpoint(cfg.OTLPEndpoint),
		otlptracehttp.WithInsecure(),
		otlptracehttp.WithURLPath("/v1/traces"),
	)
	exporter, err := otlptrace.New(ctx, client)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create otlp exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName("agentpay-gateway"),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create resource: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exporter, tracesdk.WithBatchTimeout(5*time.Second)),
		tracesdk.WithResource(res),
		tracesdk.WithSampler(tracesdk.ParentBased(tracesdk.TraceIDRatioBased(cfg.TraceSampleRate))),
	)
	otel.SetTracerProvider(tp)
	return tp.Tracer(tracerName), tp.Shutdown, nil
}

// upstreamMetrics are OpenTelemetry instruments for calls to the node,
// exported through the gateway's Prometheus registry.
type upstreamMetrics struct {
	provider *metricsdk.MeterProvider
	queries  metric.Int64Counter
	latency  metric.Float64Histogram
	height   metric.Int64Gauge
}

func newUpstreamMetrics(reg prometheus.Registerer) (*upstreamMetrics, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	mp := metricsdk.NewMeterProvider(metricsdk.WithReader(exporter))
	meter := mp.Meter(tracerName)

	m := &upstreamMetrics{provider: mp}
	if m.queries, err = meter.Int64Counter("agentpay.gateway.node_queries",
		metric.WithDescription("Query calls forwarded to the node, by method and outcome"),
	); err != nil {
		return nil, err
	}
	if m.latency, err = meter.Float64Histogram("agentpay.gateway.node_query_duration",
		metric.WithDescription("Query call latency"),
		metric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}
	if m.height, err = meter.Int64Gauge("agentpay.gateway.node_height",
		metric.WithDescription("Latest block height reported by the node"),
	); err != nil {
		return nil, err
	}
	return m, nil
}

// wrap records every query call made through conn. Errors that carry no
// gRPC status mean the node could not be reached and become Unavailable.
func (m *upstreamMetrics) wrap(conn gogogrpc.ClientConn) gogogrpc.ClientConn {
	return instrumentedConn{ClientConn: conn, metrics: m}
}

type instrumentedConn struct {
	gogogrpc.ClientConn
	metrics *upstreamMetrics
}

func (c instrumentedConn) Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error {
	start := time.Now()
	err := c.ClientConn.Invoke(ctx, method, args, reply, opts...)

	outcome := "ok"
	if err != nil {
		st, ok := status.FromError(err)
		switch {
		case !ok:
			outcome = "unavailable"
			err = status.Error(codes.Unavailable, err.Error())
		case st.Code() == codes.NotFound:
			outcome = "not_found"
		default:
			outcome = "error"
		}
	}
	c.metrics.queries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("outcome", outcome),
	))
	c.metrics.latency.Record(ctx, float64(time.Since(start).Microseconds())/1000)
	return err
}
