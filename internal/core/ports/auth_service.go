package ports

import (
	"context"
	"time"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

// PasswordHasher hashes plaintext passwords with a salted one-way function.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches hash in constant time.
	Compare(password, hash string) bool
}

// TokenCodec signs and verifies self-contained bearer tokens.
type TokenCodec interface {
	Sign(identity domain.Identity, expiresAt time.Time) (string, error)
	// Verify returns domain.ErrUnauthenticated for any malformed, forged or
	// expired token.
	Verify(token string) (domain.Identity, error)
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	Account(ctx context.Context, id string) (*domain.Account, error)
}
