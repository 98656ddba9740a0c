package log

import (
	"context"

	"github.com/google/uuid"
)

type traceKey struct{}

// WithTraceID returns a copy of ctx carrying id. Every line logged with the
// returned context is tagged with it.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceKey{}, id)
}

// NewTraceContext tags ctx with a fresh random trace id.
func NewTraceContext(ctx context.Context) context.Context {
	return WithTraceID(ctx, uuid.NewString())
}

// TraceID returns the trace id stored in ctx, or "".
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}
