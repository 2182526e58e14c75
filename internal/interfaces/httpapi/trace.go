package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fantasy-basketball/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// spanPrefixes lists the operations that get their own span. Response and
// middleware helpers run inside those spans without opening children.
var spanPrefixes = []string{"httpapi.Handler.", "httpapi.EdgeHandler."}

// startSpan opens an operation span under the request span. Routes filtered
// out of request tracing (/healthz, /metrics) have no parent and stay untraced.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}

	ctx, span := apiTracer.Start(ctx, name)
	if caller, ok := callerFromContext(ctx); ok {
		span.SetAttributes(attribute.String("enduser.id", caller))
	}
	return ctx, span
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range spanPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
