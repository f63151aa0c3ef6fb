package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/authenticating"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
	"github.com/vfg2006/capex-consolidado/pkg/log"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

var publicPaths = map[string]bool{
	"/v1/login": true,
	"/health":   true,
	"/metrics":  true,
}

// localOperator é usado quando a autenticação está desligada (ambiente local)
var localOperator = &domain.Claims{
	UserID:     "local",
	UserName:   "Operador local",
	UserRoleID: RoleAdmin,
}

// TokenValidator é a parte do autenticador usada pelo middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
}

func AuthMiddleware(authService TokenValidator, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			if !enabled {
				next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), localOperator)))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Authorization header is required", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("Token recusado")
				code := apiErrors.ErrInvalidToken
				if errors.Is(err, authenticating.ErrExpiredToken) {
					code = apiErrors.ErrExpiredToken
				}
				apiErrors.WriteError(w, code, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
		})
	}
}

func withClaims(ctx context.Context, claims *domain.Claims) context.Context {
	ctx = log.WithOperator(ctx, claims.UserID)
	return context.WithValue(ctx, ContextKeyUser, claims)
}

// ClaimsFromContext devolve o operador autenticado da requisição
func ClaimsFromContext(ctx context.Context) (*domain.Claims, bool) {
	claims, ok := ctx.Value(ContextKeyUser).(*domain.Claims)
	return claims, ok
}
