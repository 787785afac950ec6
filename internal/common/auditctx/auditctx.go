// Package auditctx carries the authenticated principal through the request
// context so persistence code can stamp audit columns without reaching into
// ambient global state.
package auditctx

import "context"

type contextKey struct{}

const anonymousUser = "anonymousUser"

// WithPrincipal returns a context carrying the given user email.
func WithPrincipal(ctx context.Context, userEmail string) context.Context {
	return context.WithValue(ctx, contextKey{}, userEmail)
}

// Principal returns the authenticated user's email, or "anonymousUser" for
// unauthenticated requests.
func Principal(ctx context.Context) string {
	if email, ok := ctx.Value(contextKey{}).(string); ok && email != "" {
		return email
	}
	return anonymousUser
}
