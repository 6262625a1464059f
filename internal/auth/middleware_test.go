package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func protectedServer() (http.Handler, *int) {
	var seenOwnerID int
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := OwnerID(r.Context()); ok {
			seenOwnerID = id
		}
		w.WriteHeader(http.StatusOK)
	})
	return OwnerAuthMiddleware(testSecret)(handler), &seenOwnerID
}

func TestOwnerAuthMiddleware_ValidToken(t *testing.T) {
	srv, seenOwnerID := protectedServer()

	token := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"owner_id": 7,
		"email":    "owner@example.com",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 7, *seenOwnerID)
}

func TestOwnerAuthMiddleware_MissingHeader(t *testing.T) {
	srv, _ := protectedServer()

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOwnerAuthMiddleware_ExpiredToken(t *testing.T) {
	srv, _ := protectedServer()

	token := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"owner_id": 7,
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOwnerAuthMiddleware_WrongSecret(t *testing.T) {
	srv, _ := protectedServer()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"owner_id": 7,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
