package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/jwt"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying the authenticated caller.
func WithPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the principal resolved by the auth
// middleware. The bool is false on unauthenticated routes.
func PrincipalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}

// AuthRequired rejects requests without a valid access token and
// resolves the token claims into a Principal on the request context.
// Tokens revoked by logout are rejected even before expiry. It runs
// after jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			role, _ := claims["role"].(string)

			p := user.Principal{
				UserID: userID,
				Role:   user.Role(role),
			}
			if employeeID, ok := claims["employee_id"].(string); ok {
				p.EmployeeID = employeeID
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		}
		return http.HandlerFunc(hfn)
	}
}
