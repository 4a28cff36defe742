// Package telemetry wraps OpenTelemetry tracing, spans end with the operation error.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const appName = "ace"

type ctxKey string

type Telemetry interface {
	Tracer() Tracer
}

type Tracer interface {
	Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, Span)
}

type telemetry struct {
	tracer Tracer
}

type tracer struct {
	tracer trace.Tracer
}

// NewNopTelemetry returns telemetry which records nothing, it is used by the CLI and in tests.
func NewNopTelemetry() Telemetry {
	return New(noop.NewTracerProvider())
}

func New(provider trace.TracerProvider) Telemetry {
	return &telemetry{tracer: &tracer{tracer: provider.Tracer(appName)}}
}

func (t *telemetry) Tracer() Tracer {
	return t.tracer
}

func (t *tracer) Start(ctx context.Context, spanName string, opts ...trace.SpanStartOption) (context.Context, Span) {
	if IsTracingDisabled(ctx) {
		return ctx, &span{span: trace.SpanFromContext(ctx), noEnd: true}
	}
	ctx, s := t.tracer.Start(ctx, spanName, opts...)
	return ctx, &span{span: s}
}
