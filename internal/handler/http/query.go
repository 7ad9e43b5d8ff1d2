package http

import (
	"net/http"
	"strconv"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/middleware"
	"github.com/staffhub-hr/staffhub-backend-go/internal/handler/http/response"
)

func queryString(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func queryIntPtr(r *http.Request, key string) *int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

// principal pulls the authenticated caller off the context, writing a
// 401 when the middleware did not run.
func principal(w http.ResponseWriter, r *http.Request) (user.Principal, bool) {
	p, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
	}
	return p, ok
}
