package authenticating

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/capex-consolidado/infrastructure/repository"
	"github.com/vfg2006/capex-consolidado/internal/config"
	"github.com/vfg2006/capex-consolidado/internal/domain"
	"github.com/vfg2006/capex-consolidado/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	userIDLength     = 12
	userIDCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	defaultRoleID    = 2
	defaultTokenTTL  = 24 * time.Hour
)

type Authenticator interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	ListUser(ctx context.Context) ([]*domain.User, error)
	LoginUser(ctx context.Context, email, password string) (string, error)
	GetUserProfile(ctx context.Context, userID string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	secret   string
	ttl      time.Duration
	now      func() time.Time
}

func NewService(userRepo repository.UserRepository, cfg config.Auth) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &Service{
		userRepo: userRepo,
		secret:   cfg.Secret,
		ttl:      ttl,
		now:      time.Now,
	}
}

// CreateUser recebe a senha em texto no campo PasswordHash e grava só o hash
func (s *Service) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	user.Email = handleEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	id, err := gonanoid.Generate(userIDCharacters, userIDLength)
	if err != nil {
		return nil, err
	}

	if user.RoleID == 0 {
		user.RoleID = defaultRoleID
	}
	user.ID = id
	user.PasswordHash = string(hashedPassword)
	user.Active = true

	created, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	created.PasswordHash = ""
	return created, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) ListUser(ctx context.Context) ([]*domain.User, error) {
	return s.userRepo.ListUser(ctx)
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário no banco de dados")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"role_id": user.RoleID,
	}).Info("auth: login realizado")

	return token, nil
}

func (s *Service) GetUserProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("auth: erro ao obter usuário")
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	claims := domain.Claims{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		Countries:  user.Countries,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
