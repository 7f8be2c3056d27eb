// Package tracing configures OpenTelemetry and wraps the pathway store with
// spans.
package tracing

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/nathan-pham/gradcap-mvp/internal/domain/pathway"
	appErrors "github.com/nathan-pham/gradcap-mvp/internal/errors"
	"github.com/nathan-pham/gradcap-mvp/internal/repository"
)

// TracerProvider wraps OpenTelemetry tracer provider
type TracerProvider struct {
	provider *sdktrace.TracerProvider
	tracer   trace.Tracer
}

// InitTracing initializes distributed tracing with an OTLP gRPC exporter.
func InitTracing(ctx context.Context, serviceName, environment, endpoint string, insecure bool) (*TracerProvider, error) {
	opts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(endpoint)}
	if insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	exporter, err := otlptrace.New(ctx, otlptracegrpc.NewClient(opts...))
	if err != nil {
		return nil, fmt.Errorf("failed to create exporter: %w", err)
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.DeploymentEnvironment(environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	return NewTracerProvider(serviceName, sdktrace.WithBatcher(exporter), sdktrace.WithResource(res)), nil
}

// NewTracerProvider builds a provider from SDK options and installs it
// globally. Tests pass a synchronous span recorder.
func NewTracerProvider(serviceName string, opts ...sdktrace.TracerProviderOption) *TracerProvider {
	opts = append(opts, sdktrace.WithSampler(sdktrace.AlwaysSample()))
	tp := sdktrace.NewTracerProvider(opts...)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &TracerProvider{
		provider: tp,
		tracer:   tp.Tracer(serviceName),
	}
}

// Tracer returns the service tracer.
func (tp *TracerProvider) Tracer() trace.Tracer {
	return tp.tracer
}

// Shutdown flushes and stops the tracer provider.
func (tp *TracerProvider) Shutdown(ctx context.Context) error {
	return tp.provider.Shutdown(ctx)
}

// TraceNodeStore wraps a store with tracing.
func TraceNodeStore(store repository.NodeStore, tracer trace.Tracer, driver string) repository.NodeStore {
	return &tracedNodeStore{inner: store, tracer: tracer, driver: driver}
}

type tracedNodeStore struct {
	inner  repository.NodeStore
	tracer trace.Tracer
	driver string
}

func (s *tracedNodeStore) ListByPosition(ctx context.Context) ([]pathway.Node, error) {
	ctx, span := s.tracer.Start(ctx, "store.ListByPosition",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("store.driver", s.driver)),
	)
	defer span.End()

	nodes, err := s.inner.ListByPosition(ctx)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("pathway.node_count", len(nodes)))
	return nodes, nil
}

func (s *tracedNodeStore) UpdateByID(ctx context.Context, node pathway.Node) (*pathway.Node, error) {
	ctx, span := s.tracer.Start(ctx, "store.UpdateByID",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("store.driver", s.driver),
			attribute.String("pathway.node_id", node.ID),
			attribute.Int("pathway.details_count", len(node.Details)),
		),
	)
	defer span.End()

	updated, err := s.inner.UpdateByID(ctx, node)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return updated, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	if appErr := appErrors.GetAppError(err); appErr != nil {
		span.SetAttributes(attribute.String("error.type", string(appErr.Type)))
		if appErr.Type == appErrors.ErrorTypeNotFound {
			return
		}
	}
	span.SetStatus(codes.Error, err.Error())
}
