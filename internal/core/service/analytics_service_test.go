package service

import (
	"context"
	"errors"
	"testing"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

type stubDeduper struct {
	seen map[string]bool
	err  error
}

func (d *stubDeduper) FirstVisit(_ context.Context, visitor string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	if d.seen[visitor] {
		return false, nil
	}
	d.seen[visitor] = true
	return true, nil
}

func TestAnalyticsService_Overview_CreatesOnFirstRead(t *testing.T) {
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, nil, discardLogger)

	a, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Visits != 0 {
		t.Errorf("expected 0 visits, got %d", a.Visits)
	}
}

func TestAnalyticsService_Track_CountsEveryVisitWithoutDedup(t *testing.T) {
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, nil, discardLogger)

	for i := 0; i < 3; i++ {
		res, err := svc.Track(context.Background(), "10.0.0.1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Counted {
			t.Fatalf("visit %d not counted", i)
		}
	}
	a, _ := svc.Overview(context.Background())
	if a.Visits != 3 {
		t.Errorf("expected 3 visits, got %d", a.Visits)
	}
}

func TestAnalyticsService_Track_Dedup(t *testing.T) {
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, &stubDeduper{seen: map[string]bool{}}, discardLogger)

	first, _ := svc.Track(context.Background(), "10.0.0.1")
	second, _ := svc.Track(context.Background(), "10.0.0.1")
	other, _ := svc.Track(context.Background(), "10.0.0.2")

	if !first.Counted || second.Counted || !other.Counted {
		t.Fatalf("unexpected counted flags: %v %v %v", first.Counted, second.Counted, other.Counted)
	}
	if other.Analytics.Visits != 2 {
		t.Errorf("expected 2 visits, got %d", other.Analytics.Visits)
	}
	if second.Analytics.Visits != 1 {
		t.Errorf("deduplicated visit must report current count 1, got %d", second.Analytics.Visits)
	}
}

func TestAnalyticsService_Track_DedupFailureStillCounts(t *testing.T) {
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, &stubDeduper{err: errors.New("redis down")}, discardLogger)

	res, err := svc.Track(context.Background(), "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Counted || res.Analytics.Visits != 1 {
		t.Fatalf("expected visit to be counted, got %+v", res)
	}
}

func TestAnalyticsService_SetVisits(t *testing.T) {
	svc := NewAnalyticsService(&stubAnalyticsRepo{}, nil, discardLogger)

	if _, err := svc.SetVisits(context.Background(), -1); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	a, err := svc.SetVisits(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Visits != 42 {
		t.Errorf("expected 42, got %d", a.Visits)
	}
}

func TestAnalyticsService_RepoError(t *testing.T) {
	svc := NewAnalyticsService(&stubAnalyticsRepo{err: errors.New("db down")}, nil, discardLogger)

	if _, err := svc.Track(context.Background(), "x"); err == nil {
		t.Fatal("expected error")
	}
}
