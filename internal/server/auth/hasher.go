package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher produces and verifies irreversible password digests.
type Hasher interface {
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. Any failure mode —
	// wrong password, malformed digest — yields false; callers cannot tell
	// which occurred.
	Verify(password, digest string) bool
}

// DummyDigest is a syntactically valid bcrypt digest with no known preimage.
// When a login targets an unknown email the service still verifies against
// it, so the response time does not reveal whether the account exists.
const DummyDigest = "$2a$10$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// BcryptHasher implements Hasher with bcrypt. Cost controls the work factor;
// verification is constant-time within bcrypt itself.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a hasher with the given cost. Costs outside the
// range bcrypt accepts fall back to bcrypt.DefaultCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

func (h *BcryptHasher) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
