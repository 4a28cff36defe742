package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/atomic-component-engine/ace/internal/pkg/utils/errors"
)

func TestTracer_SpanStatus(t *testing.T) {
	t.Parallel()

	exporter := tracetest.NewInMemoryExporter()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	tel := New(provider)

	run := func(ctx context.Context, name string, fail bool) (err error) {
		_, span := tel.Tracer().Start(ctx, name)
		defer span.End(&err)
		if fail {
			return errors.New("some error")
		}
		return nil
	}

	ctx := context.Background()
	require.NoError(t, run(ctx, "ok", false))
	require.Error(t, run(ctx, "fail", true))
	require.Error(t, run(ContextWithDisabledTracing(ctx), "disabled", true))

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "ok", spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Equal(t, "fail", spans[1].Name)
	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, "some error", spans[1].Status.Description)
}
