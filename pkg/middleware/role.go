package middleware

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
)

// Constantes para identificar os roles
const (
	RoleAdmin   = 1
	RoleAnalyst = 2
	RoleViewer  = 3
)

// RoleMiddleware cria um middleware que restringe o acesso com base nos roles
// allowedRoles é um array de IDs de roles que têm permissão para acessar a rota
func RoleMiddleware(allowedRoles []int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, role := range allowedRoles {
				if userClaims.UserRoleID == role {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%s, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CountryScope recusa requisições para países fora da lista do operador.
// O país vem do parâmetro de rota :country ou do campo de formulário/query "pais".
func CountryScope() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			country := httprouter.ParamsFromContext(r.Context()).ByName("country")
			if country == "" {
				country = r.URL.Query().Get("pais")
			}

			if country != "" && !userClaims.CanAccessCountry(country) {
				logrus.WithFields(logrus.Fields{
					"user_id": userClaims.UserID,
					"country": country,
				}).Warn("Operador sem acesso ao país")
				apiErrors.WriteError(w, apiErrors.ErrCountryNotAllowed, "Operador sem acesso ao país "+country, nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly é um middleware que permite acesso apenas para administradores
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin})
}

// AdminOrAnalyst permite gerar e processar relatórios
func AdminOrAnalyst() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleAnalyst})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]int{RoleAdmin, RoleAnalyst, RoleViewer})
}
