package auth

import "context"

type contextKey string

const claimsKey contextKey = "authClaims"

// Claims carries the authenticated caller's identity and role.
type Claims struct {
	Username string
	IsAdmin  bool
}

// ContextWithClaims returns a new context that carries the authenticated caller.
func ContextWithClaims(ctx context.Context, claims Claims) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext retrieves the authenticated caller from the context, if any.
func ClaimsFromContext(ctx context.Context) (Claims, bool) {
	if ctx == nil {
		return Claims{}, false
	}
	value := ctx.Value(claimsKey)
	if value == nil {
		return Claims{}, false
	}
	claims, ok := value.(Claims)
	if !ok {
		return Claims{}, false
	}
	if claims.Username == "" {
		return Claims{}, false
	}
	return claims, true
}
