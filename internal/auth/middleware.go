package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
)

type contextKey string

const ownerIDKey contextKey = "owner_id"

// OwnerAuthMiddleware verifies the Bearer token issued at login and stores
// the owner id on the request context for downstream handlers.
func OwnerAuthMiddleware(secret string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := r.Context()
			if id, ok := claims["owner_id"].(float64); ok {
				ctx = context.WithValue(ctx, ownerIDKey, int(id))
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OwnerID extracts the authenticated owner's id from the request context.
func OwnerID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(ownerIDKey).(int)
	return id, ok
}
