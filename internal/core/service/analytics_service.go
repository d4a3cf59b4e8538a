package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

// VisitDeduper abstracts the per-visitor dedup window (Redis).
type VisitDeduper interface {
	// FirstVisit records visitor and reports whether it was unseen in the current window.
	FirstVisit(ctx context.Context, visitor string) (bool, error)
}

type AnalyticsService struct {
	repo  ports.AnalyticsRepository
	dedup VisitDeduper
	log   zerolog.Logger
}

// NewAnalyticsService returns the visit counter use cases. dedup may be nil,
// in which case every tracked visit is counted.
func NewAnalyticsService(repo ports.AnalyticsRepository, dedup VisitDeduper, log zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, dedup: dedup, log: log}
}

func (s *AnalyticsService) Overview(ctx context.Context) (*domain.Analytics, error) {
	return s.repo.Get(ctx)
}

// Track increments the visit counter. A dedup store failure never drops a
// visit: the visit is counted and the failure logged.
func (s *AnalyticsService) Track(ctx context.Context, visitor string) (*ports.TrackResult, error) {
	if s.dedup != nil && visitor != "" {
		first, err := s.dedup.FirstVisit(ctx, visitor)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("visit dedup failed, counting anyway")
		case !first:
			current, err := s.repo.Get(ctx)
			if err != nil {
				return nil, err
			}
			return &ports.TrackResult{Analytics: current, Counted: false}, nil
		}
	}

	updated, err := s.repo.Increment(ctx)
	if err != nil {
		return nil, err
	}
	return &ports.TrackResult{Analytics: updated, Counted: true}, nil
}

func (s *AnalyticsService) SetVisits(ctx context.Context, visits int64) (*domain.Analytics, error) {
	if visits < 0 {
		return nil, domain.InvalidInput("Invalid visits value")
	}
	updated, err := s.repo.SetVisits(ctx, visits)
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("visits", visits).Msg("visit counter overwritten")
	return updated, nil
}
