package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitit/internal/auth"
	"github.com/mmynk/splitit/internal/metrics"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// InstallationIDKey is the context key for the authenticated installation ID.
const InstallationIDKey contextKey = "installation_id"

// GetInstallationID extracts the installation ID from the context.
// Returns empty string if not found.
func GetInstallationID(ctx context.Context) string {
	id, _ := ctx.Value(InstallationIDKey).(string)
	return id
}

// WithInstallationID returns a context carrying the installation ID.
func WithInstallationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, InstallationIDKey, id)
}

// RequireInstallation returns an interceptor that validates the bearer
// installation token and adds the installation ID to the request context.
// Procedures listed in public are let through without a token.
func RequireInstallation(jwtManager *auth.JWTManager, public ...string) connect.UnaryInterceptorFunc {
	open := make(map[string]bool, len(public))
	for _, p := range public {
		open[p] = true
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if open[req.Spec().Procedure] {
				return next(ctx, req)
			}

			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			// Parse Bearer token
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(parts[1])
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithInstallationID(ctx, claims.InstallationID), req)
		}
	}
}

// Interceptors returns the server's interceptor chain. Authentication runs
// outermost so the logging interceptor sees the installation ID.
func Interceptors(jwtManager *auth.JWTManager, m *metrics.Metrics, public ...string) connect.Option {
	return connect.WithInterceptors(
		RequireInstallation(jwtManager, public...),
		LoggingInterceptor(m),
	)
}
