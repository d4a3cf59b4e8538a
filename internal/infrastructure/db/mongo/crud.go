package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Shared helpers for the content collections. D is the bson document type of
// the collection; notFound is the domain error reported on a miss.

func insertDocument(ctx context.Context, coll *mongo.Collection, doc any) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", coll.Name(), err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	return oid, nil
}

func findDocument[D any](ctx context.Context, coll *mongo.Collection, id string, notFound error) (*D, error) {
	oid, err := objectID(id, notFound)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc D
	if err := coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if isNoDocuments(err) {
			return nil, notFound
		}
		return nil, fmt.Errorf("find in %s: %w", coll.Name(), err)
	}
	return &doc, nil
}

func listDocuments[D any](ctx context.Context, coll *mongo.Collection, filter bson.M) ([]D, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := coll.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", coll.Name(), err)
	}

	docs := []D{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", coll.Name(), err)
	}
	return docs, nil
}

func replaceDocument(ctx context.Context, coll *mongo.Collection, id string, doc any, notFound error) error {
	oid, err := objectID(id, notFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.ReplaceOne(ctx, bson.M{"_id": oid}, doc)
	if err != nil {
		return fmt.Errorf("replace in %s: %w", coll.Name(), err)
	}
	if res.MatchedCount == 0 {
		return notFound
	}
	return nil
}

func deleteDocument(ctx context.Context, coll *mongo.Collection, id string, notFound error) error {
	oid, err := objectID(id, notFound)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return notFound
	}
	return nil
}
