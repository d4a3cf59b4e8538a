package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/internintelligence/portfolio-api/internal/core/domain"
	"github.com/internintelligence/portfolio-api/internal/core/ports"
)

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(collectionProducts)}
}

type productDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description localizedDocument  `bson:"description"`
	Tech        []string           `bson:"tech"`
	Image       string             `bson:"image"`
	Images      []string           `bson:"images"`
	GitHub      string             `bson:"github,omitempty"`
	Demo        string             `bson:"demo,omitempty"`
	Featured    bool               `bson:"featured"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func newProductDocument(p *domain.Product) productDocument {
	return productDocument{
		Title:       p.Title,
		Description: localizedDocument{EN: p.Description.EN, AR: p.Description.AR},
		Tech:        nonNilStrings(p.Tech),
		Image:       p.Image,
		Images:      nonNilStrings(p.Images),
		GitHub:      p.GitHub,
		Demo:        p.Demo,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (d *productDocument) toDomain() *domain.Product {
	return &domain.Product{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: domain.Localized{EN: d.Description.EN, AR: d.Description.AR},
		Tech:        nonNilStrings(d.Tech),
		Image:       d.Image,
		Images:      nonNilStrings(d.Images),
		GitHub:      d.GitHub,
		Demo:        d.Demo,
		Featured:    d.Featured,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *ProductRepository) List(ctx context.Context, filter ports.ProductFilter) ([]*domain.Product, error) {
	query := bson.M{}
	if filter.Featured != nil {
		query["featured"] = *filter.Featured
	}

	docs, err := listDocuments[productDocument](ctx, r.coll, query)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Product, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	doc, err := findDocument[productDocument](ctx, r.coll, id, domain.ErrProductNotFound)
	if err != nil {
		return nil, err
	}
	return doc.toDomain(), nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	doc := newProductDocument(p)
	oid, err := insertDocument(ctx, r.coll, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := replaceDocument(ctx, r.coll, p.ID, newProductDocument(p), domain.ErrProductNotFound); err != nil {
		return nil, err
	}
	out := *p
	return &out, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.coll, id, domain.ErrProductNotFound)
}

// nonNilStrings keeps empty arrays as [] rather than null in both bson and json.
func nonNilStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
