// internal/app/store/lectures/lecturestore.go
package lecturestore

import (
	"context"

	"github.com/learnercafe/learnercafe/internal/app/store/docstore"
	"github.com/learnercafe/learnercafe/internal/app/system/category"
	"github.com/learnercafe/learnercafe/internal/app/system/ownership"
	"github.com/learnercafe/learnercafe/internal/app/system/patch"
	"github.com/learnercafe/learnercafe/internal/app/system/textsearch"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store queries and mutates lectures.
type Store struct {
	docs       *docstore.Store[models.Lecture]
	categories *category.Filter
}

// New binds a Store to db.collection. categories decides which category
// values ByCategory accepts.
func New(db *mongo.Database, collection string, categories *category.Filter) *Store {
	return &Store{
		docs:       docstore.New[models.Lecture](db, collection),
		categories: categories,
	}
}

// newestFirst sorts by descending _id. ObjectIDs grow with insertion
// time, so this is creation order, most recent first.
func newestFirst() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
}

// All returns every lecture, newest first.
func (s *Store) All(ctx context.Context) ([]models.Lecture, error) {
	return s.docs.Find(ctx, bson.M{}, newestFirst())
}

// ByCategory returns the lectures of one whitelisted category, newest
// first. A category outside the whitelist is a NotFound error and never
// reaches the store.
func (s *Store) ByCategory(ctx context.Context, token string) ([]models.Lecture, error) {
	filter, err := s.categories.Query(token)
	if err != nil {
		return nil, err
	}
	return s.docs.Find(ctx, filter, newestFirst())
}

// Search returns lectures whose mode fields contain text, case-insensitively,
// in natural order.
func (s *Store) Search(ctx context.Context, mode textsearch.Mode, text string) ([]models.Lecture, error) {
	return s.docs.Find(ctx, textsearch.Filter(mode, text))
}

// ByOwner returns the lectures posted by owner, or every lecture when
// owner is empty.
func (s *Store) ByOwner(ctx context.Context, owner string) ([]models.Lecture, error) {
	return s.docs.Find(ctx, ownership.Filter(owner))
}

// Get returns one lecture or docstore.ErrNotFound.
func (s *Store) Get(ctx context.Context, id primitive.ObjectID) (models.Lecture, error) {
	return s.docs.Get(ctx, id)
}

// Create stores a new lecture. Any client-supplied id is replaced.
func (s *Store) Create(ctx context.Context, l models.Lecture) (models.WriteResult, error) {
	l.ID = primitive.NewObjectID()
	return s.docs.Insert(ctx, l)
}

// Patch writes the whitelisted lecture fields present in body, creating the
// lecture when id does not exist yet. A non-text value for a whitelisted
// field is rejected before the store is touched.
func (s *Store) Patch(ctx context.Context, id primitive.ObjectID, body map[string]any) (models.WriteResult, error) {
	set, err := patch.Lecture.Project(body)
	if err != nil {
		return models.WriteResult{}, err
	}
	return s.docs.Set(ctx, id, set, true)
}

// Delete removes a lecture. Bookmarks referring to it are left in place.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (models.WriteResult, error) {
	return s.docs.Delete(ctx, id)
}
