package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHashService(t *testing.T) {
	hashService := &HashService{}

	t.Run("Round trip", func(t *testing.T) {
		hash, err := hashService.HashPassword("password123")
		assert.NoError(t, err)
		assert.NotEqual(t, "password123", hash)
		assert.True(t, hashService.ComparePassword(hash, "password123"))
	})

	t.Run("Wrong password rejected", func(t *testing.T) {
		hash, err := hashService.HashPassword("password123")
		assert.NoError(t, err)
		assert.False(t, hashService.ComparePassword(hash, "wrong"))
	})

	t.Run("Empty password rejected", func(t *testing.T) {
		_, err := hashService.HashPassword("")
		assert.Error(t, err)
	})

	t.Run("Garbage hash never matches", func(t *testing.T) {
		assert.False(t, hashService.ComparePassword("not-a-bcrypt-hash", "password123"))
	})
}

func TestJWTService(t *testing.T) {
	jwtService := &JWTService{}

	t.Run("Generate and validate", func(t *testing.T) {
		token, err := jwtService.GenerateJWT("u-1", "PROVIDER", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		claims, err := jwtService.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, "u-1", claims.UserID)
		assert.Equal(t, "PROVIDER", claims.Role)
		assert.Equal(t, "taskhub", claims.Issuer)
	})

	t.Run("Expired token rejected", func(t *testing.T) {
		token, err := jwtService.GenerateJWT("u-1", "CLIENT", time.Now().Add(-time.Hour))
		assert.NoError(t, err)

		_, err = jwtService.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Tampered token rejected", func(t *testing.T) {
		token, err := jwtService.GenerateJWT("u-1", "CLIENT", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		_, err = jwtService.ValidateToken(token + "x")
		assert.Error(t, err)
	})

	t.Run("Garbage token rejected", func(t *testing.T) {
		_, err := jwtService.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, _ := r.Context().Value(UserIDKey).(string)
		role, _ := r.Context().Value(RoleKey).(string)
		assert.Equal(t, "u-1", userID)
		assert.Equal(t, "CLIENT", role)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Valid token passes through with identity in context", func(t *testing.T) {
		token, err := jwtService.GenerateJWT("u-1", "CLIENT", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/missions", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/missions", nil)
		rec := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/missions", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/missions", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		AuthMiddleware(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	jwtService := &JWTService{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := AuthMiddleware(RequireRole("ADMIN")(next))

	t.Run("Matching role passes", func(t *testing.T) {
		token, err := jwtService.GenerateJWT("u-1", "ADMIN", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Other role is forbidden", func(t *testing.T) {
		token, err := jwtService.GenerateJWT("u-1", "CLIENT", time.Now().Add(time.Hour))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
