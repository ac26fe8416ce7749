package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/youthlife/internal/error_values"
	"golang.org/x/crypto/bcrypt"
)

// AuthService guards the single owner account configured at startup.
type AuthService struct {
	ownerID      uuid.UUID
	passwordHash []byte
}

func NewAuthService(ownerID uuid.UUID, passwordHash string) *AuthService {
	if ownerID == uuid.Nil || passwordHash == "" {
		log.Fatal("on auth service provided empty owner credentials")
	}
	return &AuthService{
		ownerID:      ownerID,
		passwordHash: []byte(passwordHash),
	}
}

func (as *AuthService) Login(ctx context.Context, password string) (uuid.UUID, error) {
	err := bcrypt.CompareHashAndPassword(as.passwordHash, []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return uuid.Nil, errorvalues.ErrWrongCredentials
		}
		return uuid.Nil, errors.New("comparing password error: " + err.Error())
	}
	return as.ownerID, nil
}

func (as *AuthService) IsOwner(uid uuid.UUID) bool {
	return uid == as.ownerID
}

// Hash returns the bcrypt hash to put into OWNER_PASSWORD_HASH.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
