// Package security holds the cryptographic adapters behind the auth ports:
// an HS256 token codec and a bcrypt password hasher.
package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

// Claims is the token payload. Name and Email ride along for display.
type Claims struct {
	jwt.RegisteredClaims
	Name  string `json:"name"`
	Email string `json:"email"`
}

// JWTCodec signs and verifies HS256 tokens with a process-wide secret.
// It holds no mutable state and is safe for concurrent use.
type JWTCodec struct {
	secret []byte
	now    func() time.Time
}

func NewJWTCodec(secret string) (*JWTCodec, error) {
	if secret == "" {
		return nil, errors.New("jwt codec: empty secret")
	}
	return &JWTCodec{secret: []byte(secret), now: time.Now}, nil
}

// Sign issues a token for identity that expires at expiresAt. Timestamps are
// truncated to whole seconds.
func (c *JWTCodec) Sign(identity domain.Identity, expiresAt time.Time) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.AccountID,
			IssuedAt:  jwt.NewNumericDate(c.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		Name:  identity.Name,
		Email: identity.Email,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("jwt sign: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token. A token is rejected from
// its expiry instant onwards. Every failure collapses into
// domain.ErrUnauthenticated so callers cannot tell the modes apart.
func (c *JWTCodec) Verify(token string) (domain.Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: %w", domain.ErrUnauthenticated, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return domain.Identity{}, domain.ErrUnauthenticated
	}

	return domain.Identity{
		AccountID: claims.Subject,
		Name:      claims.Name,
		Email:     claims.Email,
	}, nil
}
