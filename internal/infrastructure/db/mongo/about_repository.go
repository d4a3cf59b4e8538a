package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
)

type AboutRepository struct {
	coll *mongo.Collection
}

func NewAboutRepository(db *mongo.Database) *AboutRepository {
	return &AboutRepository{coll: db.Collection(collectionAbout)}
}

type localizedDocument struct {
	EN string `bson:"en"`
	AR string `bson:"ar"`
}

type aboutDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Role         string             `bson:"role"`
	Description  localizedDocument  `bson:"description"`
	ProfileImage string             `bson:"profileImage,omitempty"`
	Address      string             `bson:"address,omitempty"`
	Phone        string             `bson:"phone,omitempty"`
	Email        string             `bson:"email,omitempty"`
	CVLink       string             `bson:"cvLink,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func newAboutDocument(a *domain.About) aboutDocument {
	return aboutDocument{
		Name:         a.Name,
		Role:         a.Role,
		Description:  localizedDocument{EN: a.Description.EN, AR: a.Description.AR},
		ProfileImage: a.ProfileImage,
		Address:      a.Address,
		Phone:        a.Phone,
		Email:        a.Email,
		CVLink:       a.CVLink,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (d *aboutDocument) toDomain() *domain.About {
	return &domain.About{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Role:         d.Role,
		Description:  domain.Localized{EN: d.Description.EN, AR: d.Description.AR},
		ProfileImage: d.ProfileImage,
		Address:      d.Address,
		Phone:        d.Phone,
		Email:        d.Email,
		CVLink:       d.CVLink,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *AboutRepository) List(ctx context.Context) ([]*domain.About, error) {
	docs, err := listDocuments[aboutDocument](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.About, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *AboutRepository) FindByID(ctx context.Context, id string) (*domain.About, error) {
	doc, err := findDocument[aboutDocument](ctx, r.coll, id, domain.ErrAboutNotFound)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *AboutRepository) Create(ctx context.Context, a *domain.About) (*domain.About, error) {
	doc := newAboutDocument(a)
	oid, err := insertDocument(ctx, r.coll, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *AboutRepository) Update(ctx context.Context, a *domain.About) (*domain.About, error) {
	doc := newAboutDocument(a)
	if err := replaceDocument(ctx, r.coll, a.ID, doc, domain.ErrAboutNotFound); err != nil {
		return nil, err
	}
	out := *a
	return &out, nil
}

func (r *AboutRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.coll, id, domain.ErrAboutNotFound)
}
