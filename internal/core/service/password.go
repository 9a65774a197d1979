package service

import "golang.org/x/crypto/bcrypt"

// minHashCost is the floor for the bcrypt work factor.
const minHashCost = 10

// BcryptHasher hashes passwords with bcrypt at a fixed work factor.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given work factor, raised to
// minHashCost when lower.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < minHashCost {
		cost = minHashCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
