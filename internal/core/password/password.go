// Package password wraps bcrypt for credential hashing at rest.
//
// bcrypt only consumes the first 72 bytes of its input; longer plaintexts are
// truncated here explicitly so that Hash and Verify agree on the boundary.
// Passwords sharing a 72-byte prefix therefore collide — an accepted property
// of the algorithm, irrelevant at realistic password lengths.
package password

import "golang.org/x/crypto/bcrypt"

const maxInputBytes = 72

// Hasher computes and verifies salted bcrypt hashes with a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher returns a Hasher. Costs outside bcrypt's supported range fall
// back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns the salted hash of plaintext. Two calls on the same input
// produce different encodings (random salt); both verify true.
func (h *Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed hash
// verifies false, it never panics or surfaces an error: callers treat every
// mismatch identically so nothing about the stored record leaks.
func (h *Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncate(plaintext)) == nil
}

func truncate(plaintext string) []byte {
	b := []byte(plaintext)
	if len(b) > maxInputBytes {
		b = b[:maxInputBytes]
	}
	return b
}
