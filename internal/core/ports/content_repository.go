package ports

import (
	"context"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

// Every FindByID, Update and Delete returns the resource's domain not-found
// error when no document matches. Lists are sorted newest first.

type AboutRepository interface {
	List(ctx context.Context) ([]*domain.About, error)
	FindByID(ctx context.Context, id string) (*domain.About, error)
	Create(ctx context.Context, about *domain.About) (*domain.About, error)
	Update(ctx context.Context, about *domain.About) (*domain.About, error)
	Delete(ctx context.Context, id string) error
}

type SkillRepository interface {
	List(ctx context.Context) ([]*domain.Skill, error)
	FindByID(ctx context.Context, id string) (*domain.Skill, error)
	Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

// ProductFilter narrows a product listing. A nil Featured matches everything.
type ProductFilter struct {
	Featured *bool
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type MessageRepository interface {
	List(ctx context.Context) ([]*domain.Message, error)
	Create(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	SetRead(ctx context.Context, id string, read bool) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

// AnalyticsRepository manages the singleton visit counter. Every method
// creates the document on first use.
type AnalyticsRepository interface {
	Get(ctx context.Context) (*domain.Analytics, error)
	Increment(ctx context.Context) (*domain.Analytics, error)
	SetVisits(ctx context.Context, visits int64) (*domain.Analytics, error)
}
