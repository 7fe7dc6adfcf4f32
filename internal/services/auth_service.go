package services

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// AuthService decides whether a request carries the shared admin secret.
type AuthService struct {
	secret []byte
	hash   []byte
}

// NewAuthService compares against bcryptHash when it is set, otherwise
// against the plaintext secret.
func NewAuthService(secret, bcryptHash string) *AuthService {
	s := &AuthService{secret: []byte(secret)}
	if bcryptHash != "" {
		s.hash = []byte(bcryptHash)
	}
	return s
}

func (s *AuthService) IsAuthorized(credential string) bool {
	if credential == "" {
		return false
	}
	if len(s.hash) > 0 {
		return bcrypt.CompareHashAndPassword(s.hash, []byte(credential)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(credential), s.secret) == 1
}
