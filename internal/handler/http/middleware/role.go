package middleware

import (
	"net/http"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

// RequireApprover requires supervisor, hr or superadmin role.
func RequireApprover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok || !p.CanApprove() {
			response.HandleError(w, user.ErrSupervisorAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireHR requires hr or superadmin role.
func RequireHR(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		if !ok || !p.CanApproveFinal() {
			response.HandleError(w, user.ErrHRAccessRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
