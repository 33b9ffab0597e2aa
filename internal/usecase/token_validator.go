package usecase

import (
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/pkg/jwt"
)

// TokenValidator resolves a bearer token to the caller's wallet address
type TokenValidator interface {
	ValidateToken(tokenString string) (address.Address, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (address.Address, error) {
	return t.jwtService.ValidateToken(tokenString)
}
