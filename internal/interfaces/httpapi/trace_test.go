package httpapi

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/user"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"httpapi.Handler.GetScoreboard":    true,
		"httpapi.EdgeHandler.CreateLeague": true,
		"httpapi.RequestLogging":           false,
		"httpapi.writeEdgeJSON":            false,
		"httpapi.Handler":                  false,
		"usecase.ScoreService.Scoreboard":  false,
	}
	for name, want := range tests {
		require.Equal(t, want, shouldCreateHTTPAPISpan(name), name)
	}
}

func TestStartSpan_NoParentStaysNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.Healthz")
	require.Equal(t, ctx, got)
	require.False(t, span.SpanContext().IsValid())
}

func TestCallerFromContext(t *testing.T) {
	t.Parallel()

	_, ok := callerFromContext(context.Background())
	require.False(t, ok)

	_, ok = callerFromContext(withPrincipal(context.Background(), user.Principal{}))
	require.False(t, ok, "a principal without a user id is not a caller")

	caller, ok := callerFromContext(withPrincipal(context.Background(), user.Principal{UserID: "user-ava"}))
	require.True(t, ok)
	require.Equal(t, "user-ava", caller)
}
