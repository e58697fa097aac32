package usecase

import (
	"parkspot/internal/domain/user"
	"parkspot/internal/pkg/errs"
	"parkspot/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator verifies access tokens minted by the external identity
// service and extracts the caller identity.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, user.Role, error)
}

type jwtTokenValidator struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &jwtTokenValidator{jwtService: jwtService}
}

func (v *jwtTokenValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	claims, err := v.jwtService.ValidateToken(token)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token validation failed")
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", errs.Wrap(err, "token carries unknown role")
	}

	return claims.UserID, role, nil
}
