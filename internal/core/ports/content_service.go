package ports

import (
	"context"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

// AboutInput carries the fields of a new about entry. ProfileImage is used
// as-is when no upload is attached.
type AboutInput struct {
	Name         string
	Role         string
	Description  domain.Localized
	ProfileImage string
	Address      string
	Phone        string
	Email        string
	CVLink       string
	Upload       *Upload
}

// AboutPatch carries a partial update; nil fields are left untouched.
type AboutPatch struct {
	Name          *string
	Role          *string
	DescriptionEN *string
	DescriptionAR *string
	ProfileImage  *string
	Address       *string
	Phone         *string
	Email         *string
	CVLink        *string
	Upload        *Upload
}

type AboutService interface {
	List(ctx context.Context) ([]*domain.About, error)
	Get(ctx context.Context, id string) (*domain.About, error)
	Create(ctx context.Context, in AboutInput) (*domain.About, error)
	Update(ctx context.Context, id string, patch AboutPatch) (*domain.About, error)
	Delete(ctx context.Context, id string) error
}

type SkillInput struct {
	Name     string
	Category string
	Icon     *Upload
}

type SkillPatch struct {
	Name     *string
	Category *string
	Icon     *Upload
}

type SkillService interface {
	List(ctx context.Context) ([]*domain.Skill, error)
	Get(ctx context.Context, id string) (*domain.Skill, error)
	Create(ctx context.Context, in SkillInput) (*domain.Skill, error)
	Update(ctx context.Context, id string, patch SkillPatch) (*domain.Skill, error)
	Delete(ctx context.Context, id string) error
}

// ProductInput carries a new product. Image is used when no main upload is attached.
type ProductInput struct {
	Title            string
	DescriptionEN    string
	DescriptionAR    string
	Tech             []string
	GitHub           string
	Demo             string
	Featured         bool
	Image            string
	ImageUpload      *Upload
	AdditionalImages []Upload
}

type ProductPatch struct {
	Title            *string
	DescriptionEN    *string
	DescriptionAR    *string
	Tech             *[]string
	GitHub           *string
	Demo             *string
	Featured         *bool
	Image            *string
	ImageUpload      *Upload
	AdditionalImages []Upload
}

type ProductService interface {
	List(ctx context.Context, filter ProductFilter) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, in ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type MessageInput struct {
	Name    string
	Email   string
	Message string
}

type MessageService interface {
	Submit(ctx context.Context, in MessageInput) (*domain.Message, error)
	List(ctx context.Context) ([]*domain.Message, error)
	MarkRead(ctx context.Context, id string, read bool) (*domain.Message, error)
	Delete(ctx context.Context, id string) error
}

// TrackResult reports the counter after a visit and whether the visit was counted.
type TrackResult struct {
	Analytics *domain.Analytics
	Counted   bool
}

type AnalyticsService interface {
	Overview(ctx context.Context) (*domain.Analytics, error)
	// Track records a visit from visitor (typically the client IP).
	Track(ctx context.Context, visitor string) (*TrackResult, error)
	SetVisits(ctx context.Context, visits int64) (*domain.Analytics, error)
}
