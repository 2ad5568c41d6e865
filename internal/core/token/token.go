// Package token issues and verifies the HS256 bearer tokens that carry
// identity between requests. Tokens are stateless: validity is proven by
// signature and expiry alone, nothing is stored server-side. Rotating the
// signing secret invalidates everything previously issued.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/plantops/identity-service/internal/core/domain"
)

const defaultTTL = time.Hour

// Claims is the payload embedded in every issued token. Role is a snapshot
// taken at issuance; store-backed introspection re-resolves it.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies tokens with a process-wide secret, fixed at
// construction and never mutated afterwards.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewIssuer builds an Issuer. A non-positive ttl falls back to one hour.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the issuer's clock. Intended for tests that need a
// deterministic expiry boundary.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue signs a token for username carrying the given role, expiring one TTL
// from now.
func (i *Issuer) Issue(username, role string) (string, error) {
	issuedAt := i.now()
	claims := &Claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a token string. Failures map onto exactly two
// domain errors so callers can surface them distinctly:
//   - domain.ErrTokenExpired — signature valid, expiry in the past
//   - domain.ErrTokenInvalid — bad signature, malformed input, wrong algorithm
func (i *Issuer) Verify(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Username == "" {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
