package api

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type JWTServiceI interface {
	GenerateToken(uid uuid.UUID) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}
