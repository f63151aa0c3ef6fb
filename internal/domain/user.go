package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User é um operador autorizado a gerar e processar consolidados
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password,omitempty"`
	Active       bool      `json:"active"`
	RoleID       int       `json:"role_id"`
	Countries    []string  `json:"countries"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Claims struct {
	UserID     string
	UserName   string
	UserEmail  string
	UserRoleID int
	Countries  []string
	jwt.RegisteredClaims
}

// CanAccessCountry informa se o operador pode processar relatórios do país
func (c *Claims) CanAccessCountry(country string) bool {
	if len(c.Countries) == 0 {
		return true
	}
	for _, allowed := range c.Countries {
		if allowed == country {
			return true
		}
	}
	return false
}
