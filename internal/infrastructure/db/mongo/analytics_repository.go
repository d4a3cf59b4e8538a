package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

// AnalyticsRepository stores the single visit-counter document. All writes
// are upserts against an empty filter, so concurrent first visits converge
// on one document.
type AnalyticsRepository struct {
	coll *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{coll: db.Collection(collectionAnalytics)}
}

type analyticsDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Visits    int64              `bson:"visits"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *analyticsDocument) toDomain() *domain.Analytics {
	return &domain.Analytics{
		ID:        d.ID.Hex(),
		Visits:    d.Visits,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// Get returns the counter, creating it with zero visits on first read.
func (r *AnalyticsRepository) Get(ctx context.Context) (*domain.Analytics, error) {
	now := time.Now().UTC()
	return r.upsert(ctx, bson.M{
		"$setOnInsert": bson.M{"visits": int64(0), "createdAt": now, "updatedAt": now},
	})
}

func (r *AnalyticsRepository) Increment(ctx context.Context) (*domain.Analytics, error) {
	now := time.Now().UTC()
	return r.upsert(ctx, bson.M{
		"$inc":         bson.M{"visits": 1},
		"$set":         bson.M{"updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	})
}

func (r *AnalyticsRepository) SetVisits(ctx context.Context, visits int64) (*domain.Analytics, error) {
	now := time.Now().UTC()
	return r.upsert(ctx, bson.M{
		"$set":         bson.M{"visits": visits, "updatedAt": now},
		"$setOnInsert": bson.M{"createdAt": now},
	})
}

func (r *AnalyticsRepository) upsert(ctx context.Context, update bson.M) (*domain.Analytics, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc analyticsDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{}, update, opts).Decode(&doc); err != nil {
		return nil, fmt.Errorf("upsert analytics: %w", err)
	}
	return doc.toDomain(), nil
}
