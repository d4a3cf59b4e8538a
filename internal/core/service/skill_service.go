package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type SkillService struct {
	repo   ports.SkillRepository
	assets ports.AssetStore
	log    zerolog.Logger
}

func NewSkillService(repo ports.SkillRepository, assets ports.AssetStore, log zerolog.Logger) *SkillService {
	return &SkillService{repo: repo, assets: assets, log: log}
}

func (s *SkillService) List(ctx context.Context) ([]*domain.Skill, error) {
	return s.repo.List(ctx)
}

func (s *SkillService) Get(ctx context.Context, id string) (*domain.Skill, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *SkillService) Create(ctx context.Context, in ports.SkillInput) (*domain.Skill, error) {
	if in.Name == "" || in.Category == "" {
		return nil, domain.InvalidInput("Name and category required")
	}
	category := domain.SkillCategory(in.Category)
	if !category.Valid() {
		return nil, domain.InvalidInput("category must be one of: frontend, backend, tools, other")
	}

	now := time.Now().UTC()
	skill := &domain.Skill{
		Name:      in.Name,
		Category:  category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Icon != nil {
		url, err := uploadAsset(ctx, s.assets, folderSkills, *in.Icon)
		if err != nil {
			return nil, err
		}
		skill.Icon = url
	}

	created, err := s.repo.Create(ctx, skill)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("skill_id", created.ID).Str("category", string(category)).Msg("skill created")
	return created, nil
}

func (s *SkillService) Update(ctx context.Context, id string, p ports.SkillPatch) (*domain.Skill, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		if *p.Name == "" {
			return nil, domain.InvalidInput("name cannot be empty")
		}
		skill.Name = *p.Name
	}
	if p.Category != nil {
		category := domain.SkillCategory(*p.Category)
		if !category.Valid() {
			return nil, domain.InvalidInput("category must be one of: frontend, backend, tools, other")
		}
		skill.Category = category
	}
	if p.Icon != nil {
		url, err := uploadAsset(ctx, s.assets, folderSkills, *p.Icon)
		if err != nil {
			return nil, err
		}
		skill.Icon = url
	}

	skill.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, skill)
}

func (s *SkillService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
