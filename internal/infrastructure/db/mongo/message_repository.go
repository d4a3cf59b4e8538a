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

type MessageRepository struct {
	coll *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{coll: db.Collection(collectionMessages)}
}

type messageDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Message   string             `bson:"message"`
	Read      bool               `bson:"read"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *messageDocument) toDomain() *domain.Message {
	return &domain.Message{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Message:   d.Message,
		Read:      d.Read,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *MessageRepository) List(ctx context.Context) ([]*domain.Message, error) {
	docs, err := listDocuments[messageDocument](ctx, r.coll, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Message, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toDomain())
	}
	return out, nil
}

func (r *MessageRepository) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	doc := messageDocument{
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	oid, err := insertDocument(ctx, r.coll, doc)
	if err != nil {
		return nil, err
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

// SetRead flips the read flag and returns the updated message.
func (r *MessageRepository) SetRead(ctx context.Context, id string, read bool) (*domain.Message, error) {
	oid, err := objectID(id, domain.ErrMessageNotFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"read": read, "updatedAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc messageDocument
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("update message: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	return deleteDocument(ctx, r.coll, id, domain.ErrMessageNotFound)
}
