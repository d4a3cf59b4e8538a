package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type AboutService struct {
	repo   ports.AboutRepository
	assets ports.AssetStore
	log    zerolog.Logger
}

// NewAboutService wires the about use cases. assets may be nil when no asset
// host is configured; uploads then fail with domain.ErrUploadsDisabled.
func NewAboutService(repo ports.AboutRepository, assets ports.AssetStore, log zerolog.Logger) *AboutService {
	return &AboutService{repo: repo, assets: assets, log: log}
}

func (s *AboutService) List(ctx context.Context) ([]*domain.About, error) {
	return s.repo.List(ctx)
}

func (s *AboutService) Get(ctx context.Context, id string) (*domain.About, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AboutService) Create(ctx context.Context, in ports.AboutInput) (*domain.About, error) {
	if in.Name == "" || in.Role == "" || !in.Description.Complete() {
		return nil, domain.InvalidInput("Name, role and description are required")
	}

	now := time.Now().UTC()
	about := &domain.About{
		Name:         in.Name,
		Role:         in.Role,
		Description:  in.Description,
		ProfileImage: in.ProfileImage,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		CVLink:       in.CVLink,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if in.Upload != nil {
		url, err := uploadAsset(ctx, s.assets, folderAbout, *in.Upload)
		if err != nil {
			return nil, err
		}
		about.ProfileImage = url
	}

	created, err := s.repo.Create(ctx, about)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("about_id", created.ID).Msg("about entry created")
	return created, nil
}

func (s *AboutService) Update(ctx context.Context, id string, p ports.AboutPatch) (*domain.About, error) {
	about, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&about.Name, p.Name)
	setString(&about.Role, p.Role)
	setString(&about.Description.EN, p.DescriptionEN)
	setString(&about.Description.AR, p.DescriptionAR)
	setString(&about.Address, p.Address)
	setString(&about.Phone, p.Phone)
	setString(&about.Email, p.Email)
	setString(&about.CVLink, p.CVLink)

	if p.Upload != nil {
		url, err := uploadAsset(ctx, s.assets, folderAbout, *p.Upload)
		if err != nil {
			return nil, err
		}
		about.ProfileImage = url
	} else {
		setString(&about.ProfileImage, p.ProfileImage)
	}

	if about.Name == "" || about.Role == "" || !about.Description.Complete() {
		return nil, domain.InvalidInput("Name, role and description cannot be empty")
	}

	about.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, about)
}

func (s *AboutService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("about_id", id).Msg("about entry deleted")
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
