package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

// DefaultTokenTTL is the lifetime of a token issued at login.
const DefaultTokenTTL = 10 * 24 * time.Hour

// bcrypt rejects longer inputs.
const maxPasswordBytes = 72

// AuthService implements registration and login.
type AuthService struct {
	repo     ports.AccountRepository
	hasher   ports.PasswordHasher
	codec    ports.TokenCodec
	tokenTTL time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(
	repo ports.AccountRepository,
	hasher ports.PasswordHasher,
	codec ports.TokenCodec,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		codec:    codec,
		tokenTTL: tokenTTL,
		log:      log,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.Account, error) {
	name = strings.TrimSpace(name)
	if name == "" || email == "" || password == "" {
		return nil, domain.InvalidInput("name, email and password are required")
	}
	if len(password) > maxPasswordBytes {
		return nil, domain.InvalidInput("password must be at most 72 bytes")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	created, err := s.repo.Create(ctx, &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", created.ID).Msg("account registered")
	return created, nil
}

// Login verifies the credentials and issues a signed token. An unknown email
// fails with domain.ErrAccountNotFound, a wrong password with
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !s.hasher.Compare(password, account.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Sign(account.Identity(), s.now().Add(s.tokenTTL))
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return token, account, nil
}

// Account returns the stored account behind a verified identity.
func (s *AuthService) Account(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}
