package transport

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type accessKey struct{}

// Access is the resolved identity behind a bearer token. Key partitions all
// entity rows; CanComment gates every mutating method.
type Access struct {
	Key        string
	Label      string
	CanComment bool
}

// ReviewerResolver resolves an Access from a bearer token.
type ReviewerResolver interface {
	ResolveAccess(ctx context.Context, token string) (Access, error)
}

// AccessFromContext returns the resolved access from context, if present.
func AccessFromContext(ctx context.Context) (Access, bool) {
	access, ok := ctx.Value(accessKey{}).(Access)
	return access, ok
}

// AuthMiddleware enforces bearer token authentication.
func AuthMiddleware(resolver ReviewerResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			access, err := resolver.ResolveAccess(r.Context(), token)
			if err != nil || access.Key == "" {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), accessKey{}, access)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
