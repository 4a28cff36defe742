package telemetry

import (
	"context"
)

const disabledTracingCtxKey = ctxKey("disabled-tracing")

// ContextWithDisabledTracing disables spans for nested operations, used by the watch loop.
func ContextWithDisabledTracing(ctx context.Context) context.Context {
	return context.WithValue(ctx, disabledTracingCtxKey, true)
}

func IsTracingDisabled(ctx context.Context) bool {
	v, _ := ctx.Value(disabledTracingCtxKey).(bool)
	return v
}
