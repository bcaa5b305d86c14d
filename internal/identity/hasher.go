package identity

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hasher turns raw passwords into salted one-way hashes.
type Hasher interface {
	Hash(raw string) ([]byte, error)
	// Compare returns ErrMismatch when raw does not produce hash.
	Compare(hash []byte, raw string) error
}

var ErrMismatch = errors.New("password mismatch")

type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(raw string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(raw), h.Cost)
}

func (h BcryptHasher) Compare(hash []byte, raw string) error {
	err := bcrypt.CompareHashAndPassword(hash, []byte(raw))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
