package httpapi

import (
	"context"

	"github.com/riskibarqy/fantasy-basketball/internal/domain/user"
)

type principalKey struct{}

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok && p.UserID != ""
}

// callerFromContext names the authenticated user for span attributes.
func callerFromContext(ctx context.Context) (string, bool) {
	p, ok := principalFromContext(ctx)
	if !ok {
		return "", false
	}
	return p.UserID, true
}
