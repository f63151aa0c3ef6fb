package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/internal/usecases/authenticating"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
	"github.com/vfg2006/capex-consolidado/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	RoleID    int      `json:"role_id"`
	Countries []string `json:"countries"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.LoginUser(r.Context(), req.Email, req.Password)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"token": token,
		})
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		user, err := service.GetUserProfile(r.Context(), userClaims.UserID)
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUser(r.Context())
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar usuários")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar usuários", nil)
			return
		}
		if users == nil {
			users = []*domain.User{}
		}

		writeJSON(w, http.StatusOK, users)
	}
}

func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		var req CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		user, err := service.CreateUser(r.Context(), &domain.User{
			Name:         req.Name,
			Email:        req.Email,
			PasswordHash: req.Password,
			RoleID:       req.RoleID,
			Countries:    req.Countries,
		})
		if err != nil {
			handleAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// handleAuthError trata erros específicos de login e retorna a resposta apropriada
func handleAuthError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details any
		if authErr.UserID != "" {
			details = map[string]any{"user_id": authErr.UserID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, authenticating.ErrInvalidCredentials):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "Credenciais inválidas", nil)

	case errors.Is(err, authenticating.ErrUserDisabled):
		apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Usuário desativado", nil)

	case errors.Is(err, authenticating.ErrUserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)

	default:
		logrus.WithError(err).Error("Erro de autenticação não mapeado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao autenticar", nil)
	}
}
