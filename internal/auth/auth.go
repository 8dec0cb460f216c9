package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("admin password cannot be empty")

// Verifier checks candidate admin passwords. The catalog and inquiry cores
// have no notion of admin; the HTTP boundary consults a Verifier before
// invoking the operations it chooses to gate.
type Verifier struct {
	password string
	hash     string
}

// NewVerifier builds a Verifier from a plaintext password or, when hash is
// non-empty, a bcrypt hash that takes precedence over the plaintext.
func NewVerifier(password, hash string) (*Verifier, error) {
	if password == "" && hash == "" {
		return nil, ErrEmptyPassword
	}
	return &Verifier{password: password, hash: hash}, nil
}

func (v *Verifier) Verify(candidate string) bool {
	if candidate == "" {
		return false
	}
	if v.hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(v.hash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(v.password), []byte(candidate)) == 1
}

// HashPassword produces a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}
