package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

type SkillRepository struct {
	coll *mongo.Collection
}

func NewSkillRepository(db *mongo.Database) *SkillRepository {
	return &SkillRepository{coll: db.Collection(collectionSkills)}
}

type skillDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Icon      string             `bson:"icon"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func newSkillDocument(s *domain.Skill) skillDocument {
	return skillDocument{
		Name:      s.Name,
		Category:  string(s.Category),
		Icon:      s.Icon,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (d *skillDocument) toDomain() *domain.Skill {
	return &domain.Skill{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Category:  domain.SkillCategory(d.Category),
		Icon:      d.Icon,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *SkillRepository) List(ctx context.Context) ([]*domain.Skill, error) {
	docs, err := listDocuments[skillDocument](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Skill, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *SkillRepository) FindByID(ctx context.Context, id string) (*domain.Skill, error) {
	doc, err := findDocument[skillDocument](ctx, r.coll, id, domain.ErrSkillNotFound)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *SkillRepository) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	doc := newSkillDocument(s)
	oid, err := insertDocument(ctx, r.coll, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *SkillRepository) Update(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	if err := replaceDocument(ctx, r.coll, s.ID, newSkillDocument(s), domain.ErrSkillNotFound); err != nil {
		return nil, err
	}
	out := *s
	return &out, nil
}

func (r *SkillRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.coll, id, domain.ErrSkillNotFound)
}
