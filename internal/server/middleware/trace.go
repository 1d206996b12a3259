// Package middleware provides HTTP middleware for request tracing and CORS.
package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// traceIDKey is the context key for the request trace ID.
const traceIDKey ContextKey = "traceID"

// TraceIDHeader carries the trace ID on responses, and on requests from
// callers that already have one.
const TraceIDHeader = "X-Trace-Id"

// TraceID assigns every request a trace ID, stores it in the request context
// and echoes it in the response header. A well-formed UUID supplied by the
// caller is reused.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.NewString()
		}

		w.Header().Set(TraceIDHeader, traceID)
		ctx := context.WithValue(r.Context(), traceIDKey, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTraceID returns the trace ID stored by TraceID, or "" outside that middleware.
func GetTraceID(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}

// WithTraceID returns a copy of ctx carrying traceID (for testing purposes).
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}
