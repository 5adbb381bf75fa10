// Package middleware provides HTTP middleware for API token authentication.
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// scopeKey is the context key for storing the authenticated token scope.
const scopeKey ContextKey = "scope"

// TokenValidator validates API tokens. The interface keeps this package from
// importing the JWT service implementation.
type TokenValidator interface {
	ValidateToken(tokenString string) (ScopeGetter, error)
}

// ScopeGetter extracts the scope from token claims.
type ScopeGetter interface {
	GetScope() string
}

// Auth creates middleware that validates bearer tokens and adds the token
// scope to the request context.
func Auth(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// "Bearer" prefix is matched case-insensitively.
			parts := strings.Fields(authHeader)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			claims, err := validator.ValidateToken(parts[1])
			if err != nil {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), scopeKey, claims.GetScope())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetScope extracts the authenticated token scope from the request context.
func GetScope(r *http.Request) (string, error) {
	scope, ok := r.Context().Value(scopeKey).(string)
	if !ok {
		return "", fmt.Errorf("scope not found in request context")
	}
	return scope, nil
}
