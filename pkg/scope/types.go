package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskflow-pro/internal/model"
)

const (
	DefaultTTL = 24 * time.Hour
	Issuer     = "taskflow-pro"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Payload is the JWT claim set.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// Scope converts the claims back into a model.Scope.
func (p Payload) Scope() model.Scope {
	return model.Scope{
		UserID:   p.UserID,
		Username: p.Username,
		Email:    p.Email,
	}
}

type implManager struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}
