package usecase

import (
	"lead-exchange/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator is the middleware-facing slice of the token service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// ClientIDFromClaims exists so middleware never reaches into claim internals.
func ClientIDFromClaims(claims *jwt.Claims) uuid.UUID {
	return claims.ClientID
}
