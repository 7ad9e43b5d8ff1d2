package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub-hr/staffhub-backend-go/internal/domain/user"
	"github.com/staffhub-hr/staffhub-backend-go/internal/pkg/jwt"
)

func newProtectedRouter(t *testing.T, jwtService jwt.Service) *chi.Mux {
	t.Helper()

	r := chi.NewRouter()
	r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
	r.Use(AuthRequired(jwtService))
	r.Get("/me", func(w http.ResponseWriter, r *http.Request) {
		p, ok := PrincipalFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "user-1", p.UserID)
		w.WriteHeader(http.StatusOK)
	})
	return r
}

func TestAuthRequiredAcceptsValidAccessToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", nil, user.RoleHR)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiredRejectsRevokedToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@example.com", nil, user.RoleHR)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, "token must be accepted before revocation")

	jwtService.RevokeToken(token)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsRefreshToken(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "1h", "24h")
	router := newProtectedRouter(t, jwtService)

	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
