package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const visitKeyPrefix = "visit:"

// VisitDeduper remembers recent visitors so repeated page loads within the
// window are only counted once.
// Key format: visit:<visitor>
type VisitDeduper struct {
	client *redis.Client
	window time.Duration
}

func NewVisitDeduper(client *redis.Client, window time.Duration) *VisitDeduper {
	return &VisitDeduper{client: client, window: window}
}

// FirstVisit records the visitor and reports whether this is their first
// visit inside the window. The check and the mark are one SET NX round trip.
func (d *VisitDeduper) FirstVisit(ctx context.Context, visitor string) (bool, error) {
	ok, err := d.client.SetNX(ctx, visitKeyPrefix+visitor, "1", d.window).Result()
	if err != nil {
		return false, fmt.Errorf("visit dedup: %w", err)
	}
	return ok, nil
}

// Ping reports whether Redis is reachable.
func (d *VisitDeduper) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}
