package ports

import (
	"context"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

// AccountRepository defines the persistence operations the credential
// verifier needs. Lookups return domain.ErrAccountNotFound on a miss.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// Create returns domain.ErrAccountExists when the email is taken.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}
