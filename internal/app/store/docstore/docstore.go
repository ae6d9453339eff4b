// internal/app/store/docstore/docstore.go
package docstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/learnercafe/learnercafe/internal/app/system/apperr"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	// ErrNotFound is returned by Get when no document has the given id.
	ErrNotFound = apperr.New(apperr.NotFound, "document not found")
	// ErrInvalidID is returned by ParseID for identifiers that are not
	// 24-character hex ObjectIDs.
	ErrInvalidID = apperr.New(apperr.Invalid, "invalid identifier")
)

// ParseID converts a path identifier into an ObjectID.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// Store is a CRUD adapter over one named collection. T is the document
// type decoded from and encoded into that collection; it may be a struct
// or a map type such as models.Document.
type Store[T any] struct {
	c *mongo.Collection
}

// New binds a Store to db.collection.
func New[T any](db *mongo.Database, collection string) *Store[T] {
	return &Store[T]{c: db.Collection(collection)}
}

// Collection exposes the underlying collection for queries that need
// projections or aggregation.
func (s *Store[T]) Collection() *mongo.Collection {
	return s.c
}

// Find returns every document matching filter. A nil filter matches all
// documents. The result is never nil; no matches yields an empty slice.
func (s *Store[T]) Find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]T, error) {
	if filter == nil {
		filter = bson.M{}
	}
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("docstore.Find(%s): %w", s.c.Name(), err)
	}
	defer cur.Close(ctx)

	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("docstore.Find(%s): %w", s.c.Name(), err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Get returns the document with the given id, or ErrNotFound.
func (s *Store[T]) Get(ctx context.Context, id primitive.ObjectID) (T, error) {
	var doc T
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, ErrNotFound
	}
	if err != nil {
		return doc, fmt.Errorf("docstore.Get(%s): %w", s.c.Name(), err)
	}
	return doc, nil
}

// Insert stores doc. The store assigns the identifier when doc carries none.
// Callers that need to recognize duplicate-key failures should inspect the
// returned error with wafflemongo.IsDup; it is returned unwrapped.
func (s *Store[T]) Insert(ctx context.Context, doc T) (models.WriteResult, error) {
	res, err := s.c.InsertOne(ctx, doc)
	if err != nil {
		return models.WriteResult{}, err
	}
	return models.WriteResult{InsertedID: res.InsertedID}, nil
}

// Set applies a $set of fields to the document with the given id. With
// upsert, a missing document is created holding exactly id and fields.
func (s *Store[T]) Set(ctx context.Context, id primitive.ObjectID, fields bson.M, upsert bool) (models.WriteResult, error) {
	if len(fields) == 0 {
		return s.touch(ctx, id, upsert)
	}

	opts := options.Update().SetUpsert(upsert)
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": fields}, opts)
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("docstore.Set(%s): %w", s.c.Name(), err)
	}
	out := models.WriteResult{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
	if res.UpsertedID != nil {
		out.InsertedID = res.UpsertedID
	}
	return out, nil
}

// touch handles an update with nothing to set. Mongo rejects an empty $set,
// so an existing document is reported as matched and, with upsert, a
// missing one is created empty.
func (s *Store[T]) touch(ctx context.Context, id primitive.ObjectID, upsert bool) (models.WriteResult, error) {
	n, err := s.c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("docstore.Set(%s): %w", s.c.Name(), err)
	}
	if n > 0 {
		return models.WriteResult{MatchedCount: n}, nil
	}
	if !upsert {
		return models.WriteResult{}, nil
	}
	if _, err := s.c.InsertOne(ctx, bson.M{"_id": id}); err != nil {
		return models.WriteResult{}, fmt.Errorf("docstore.Set(%s): %w", s.c.Name(), err)
	}
	return models.WriteResult{InsertedID: id}, nil
}

// Delete removes the document with the given id. Deleting a missing
// document is not an error; DeletedCount is 0.
func (s *Store[T]) Delete(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return models.WriteResult{}, fmt.Errorf("docstore.Delete(%s): %w", s.c.Name(), err)
	}
	return models.WriteResult{DeletedCount: res.DeletedCount}, nil
}
