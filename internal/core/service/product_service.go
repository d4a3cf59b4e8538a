package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	assets ports.AssetStore
	log    zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, assets ports.AssetStore, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, assets: assets, log: log}
}

func (s *ProductService) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	return s.repo.List(ctx, filter)
}

func (s *ProductService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, in ports.ProductInput) (*domain.Product, error) {
	if in.Title == "" || in.DescriptionEN == "" || in.DescriptionAR == "" {
		return nil, domain.InvalidInput("Title and descriptions (EN & AR) are required")
	}
	if len(in.AdditionalImages) > maxAdditionalImages {
		return nil, domain.InvalidInput(fmt.Sprintf("at most %d additional images are allowed", maxAdditionalImages))
	}
	if in.ImageUpload == nil && in.Image == "" {
		return nil, domain.InvalidInput("Product image is required")
	}

	now := time.Now().UTC()
	product := &domain.Product{
		Title:       in.Title,
		Description: domain.Localized{EN: in.DescriptionEN, AR: in.DescriptionAR},
		Tech:        nonNil(in.Tech),
		GitHub:      in.GitHub,
		Demo:        in.Demo,
		Featured:    in.Featured,
		Image:       in.Image,
		Images:      []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if in.ImageUpload != nil {
		url, err := uploadAsset(ctx, s.assets, folderProducts, *in.ImageUpload)
		if err != nil {
			return nil, err
		}
		product.Image = url
	}

	gallery, err := uploadAssets(ctx, s.assets, folderProducts, in.AdditionalImages)
	if err != nil {
		return nil, err
	}
	product.Images = append(product.Images, gallery...)

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("product_id", created.ID).
		Int("images", len(created.Images)).
		Msg("product created")
	return created, nil
}

// Update applies a partial update. Newly uploaded additional images are
// appended to the existing gallery.
func (s *ProductService) Update(ctx context.Context, id string, p ports.ProductPatch) (*domain.Product, error) {
	if len(p.AdditionalImages) > maxAdditionalImages {
		return nil, domain.InvalidInput(fmt.Sprintf("at most %d additional images are allowed", maxAdditionalImages))
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	setString(&product.Title, p.Title)
	setString(&product.GitHub, p.GitHub)
	setString(&product.Demo, p.Demo)
	// empty translations keep the stored text
	if p.DescriptionEN != nil && *p.DescriptionEN != "" {
		product.Description.EN = *p.DescriptionEN
	}
	if p.DescriptionAR != nil && *p.DescriptionAR != "" {
		product.Description.AR = *p.DescriptionAR
	}
	if p.Featured != nil {
		product.Featured = *p.Featured
	}
	if p.Tech != nil {
		product.Tech = nonNil(*p.Tech)
	}
	if product.Title == "" {
		return nil, domain.InvalidInput("title cannot be empty")
	}

	if p.ImageUpload != nil {
		url, err := uploadAsset(ctx, s.assets, folderProducts, *p.ImageUpload)
		if err != nil {
			return nil, err
		}
		product.Image = url
	} else {
		setString(&product.Image, p.Image)
	}

	gallery, err := uploadAssets(ctx, s.assets, folderProducts, p.AdditionalImages)
	if err != nil {
		return nil, err
	}
	product.Images = append(nonNil(product.Images), gallery...)

	product.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
