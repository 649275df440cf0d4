package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"TAREAS_BACK-END/internal/common"
)

// MaxPasswordBytes is the bcrypt input limit.
const MaxPasswordBytes = 72

// BcryptHasher hashes and compares passwords at a fixed cost.
type BcryptHasher struct {
	cost  int
	dummy []byte
}

// NewBcryptHasher precomputes a dummy digest used to equalize the cost of
// logins with unknown e-mails.
func NewBcryptHasher(cost int) (*BcryptHasher, error) {
	dummy, err := bcrypt.GenerateFromPassword([]byte("tareas-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt dummy hash: %w", err)
	}
	return &BcryptHasher{cost: cost, dummy: dummy}, nil
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", common.Validation("La contraseña no puede superar 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.Validation("La contraseña no puede superar 72 bytes")
		}
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(hash), nil
}

// Compare reports whether password matches hash. Malformed hashes never match.
func (h *BcryptHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CompareDummy burns one comparison against the dummy digest. Always false.
func (h *BcryptHasher) CompareDummy(password string) bool {
	_ = bcrypt.CompareHashAndPassword(h.dummy, []byte(password))
	return false
}
