package authenticating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/capex-consolidado/infrastructure/repository/mocks"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser(t *testing.T) {
	ctx := context.Background()
	activeUser := &domain.User{
		ID:           "abc123",
		Name:         "Analista",
		Email:        "analista@farmatodo.com",
		PasswordHash: hashPassword(t, "segredo"),
		Active:       true,
		RoleID:       2,
		Countries:    []string{"vzla"},
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(repo *mocks.MockUserRepository)
		validate func(t *testing.T, service *Service, token string, err error)
	}{
		{
			name:     "Deve gerar token com os países do operador quando a senha confere",
			email:    " Analista@Farmatodo.com ",
			password: "segredo",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "analista@farmatodo.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				require.NoError(t, err)
				require.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				require.NoError(t, err)
				assert.Equal(t, "abc123", claims.UserID)
				assert.Equal(t, 2, claims.UserRoleID)
				assert.Equal(t, []string{"vzla"}, claims.Countries)
			},
		},
		{
			name:     "Deve recusar senha incorreta",
			email:    "analista@farmatodo.com",
			password: "errada",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "analista@farmatodo.com").Return(activeUser, nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.Empty(t, token)
				assert.ErrorIs(t, err, ErrInvalidCredentials)

				var authErr *AuthError
				require.True(t, errors.As(err, &authErr))
				assert.Equal(t, apiErrors.ErrInvalidCredentials, authErr.Code)
				assert.Equal(t, "abc123", authErr.UserID)
			},
		},
		{
			name:     "Deve informar usuário inexistente",
			email:    "ninguem@farmatodo.com",
			password: "segredo",
			setup: func(repo *mocks.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(ctx, "ninguem@farmatodo.com").Return(nil, nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrUserNotFound)
			},
		},
		{
			name:     "Deve recusar conta desativada",
			email:    "analista@farmatodo.com",
			password: "segredo",
			setup: func(repo *mocks.MockUserRepository) {
				disabled := *activeUser
				disabled.Active = false
				repo.EXPECT().GetUserByEmail(ctx, "analista@farmatodo.com").Return(&disabled, nil)
			},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrUserDisabled)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Deve exigir email e senha sem consultar o banco",
			email:    "",
			password: "segredo",
			setup:    func(repo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, service *Service, token string, err error) {
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo, config.Auth{Secret: "test-secret", TokenTTL: time.Hour})
			token, err := service.LoginUser(ctx, tt.email, tt.password)
			tt.validate(t, service, token, err)
		})
	}
}

func TestValidateToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	user := &domain.User{ID: "u1", Name: "Admin", Email: "admin@farmatodo.com", RoleID: 1}

	t.Run("Deve recusar token expirado", func(t *testing.T) {
		issuer := NewService(repo, config.Auth{Secret: "test-secret", TokenTTL: time.Hour})
		issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := issuer.generateJWT(user)
		require.NoError(t, err)

		_, err = issuer.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Deve recusar token assinado com outro segredo", func(t *testing.T) {
		issuer := NewService(repo, config.Auth{Secret: "outro-segredo"})
		token, err := issuer.generateJWT(user)
		require.NoError(t, err)

		validator := NewService(repo, config.Auth{Secret: "test-secret"})
		_, err = validator.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Deve gravar o hash da senha e gerar o id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)

		repo.EXPECT().GetUserByEmail(ctx, "nova@farmatodo.com").Return(nil, nil)
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, user *domain.User) (*domain.User, error) {
			assert.Len(t, user.ID, userIDLength)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("segredo")))
			assert.Equal(t, defaultRoleID, user.RoleID)
			assert.True(t, user.Active)
			return user, nil
		})

		service := NewService(repo, config.Auth{Secret: "test-secret"})
		created, err := service.CreateUser(ctx, &domain.User{Name: "Nova", Email: "Nova@Farmatodo.com", PasswordHash: "segredo"})
		require.NoError(t, err)
		assert.Empty(t, created.PasswordHash)
		assert.Equal(t, "nova@farmatodo.com", created.Email)
	})

	t.Run("Deve recusar email já cadastrado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)

		repo.EXPECT().GetUserByEmail(ctx, "nova@farmatodo.com").Return(&domain.User{ID: "x"}, nil)

		service := NewService(repo, config.Auth{Secret: "test-secret"})
		_, err := service.CreateUser(ctx, &domain.User{Name: "Nova", Email: "nova@farmatodo.com", PasswordHash: "segredo"})
		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})
}
