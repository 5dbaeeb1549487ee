package auth

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for access token creation and validation.
type TokenService interface {
	CreateToken(userID uuid.UUID, email string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}
