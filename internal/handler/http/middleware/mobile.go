package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/auth"
	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

// MobileTokenVerifier resolves a compact mobile bearer token to a
// principal. Implemented by the auth service.
type MobileTokenVerifier interface {
	VerifyMobileToken(ctx context.Context, token string) (user.Principal, error)
}

// MobileAuth authenticates field-app requests carrying the compact
// bearer token and puts the resolved principal on the context.
func MobileAuth(verifier MobileTokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			p, err := verifier.VerifyMobileToken(r.Context(), token)
			if err != nil {
				response.HandleError(w, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
		}
		return http.HandlerFunc(hfn)
	}
}
