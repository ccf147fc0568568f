package auth

import "context"

type claimsKey struct{}

// WithClaims returns a context carrying the authenticated identity.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFrom extracts the authenticated identity placed by the session
// guard. The second return is false on unguarded requests.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}
