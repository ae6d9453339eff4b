package testutil

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok || rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateLecture inserts a lecture into the default lectures collection.
// IDs are generated in call order, so later fixtures sort as newer.
func (f *Fixtures) CreateLecture(ctx context.Context, l models.Lecture) models.Lecture {
	f.t.Helper()

	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	if _, err := f.db.Collection(models.DefaultLecturesCollection).InsertOne(ctx, l); err != nil {
		f.t.Fatalf("failed to create test lecture: %v", err)
	}
	return l
}

// CreateUser inserts a user.
func (f *Fixtures) CreateUser(ctx context.Context, u models.User) models.User {
	f.t.Helper()

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := f.db.Collection(models.UsersCollection).InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateAdmin inserts a user with the admin role.
func (f *Fixtures) CreateAdmin(ctx context.Context, name, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, models.User{Name: name, Email: email, Role: models.RoleAdmin})
}

// CreateDocument inserts a freeform document into collection.
func (f *Fixtures) CreateDocument(ctx context.Context, collection string, doc models.Document) primitive.ObjectID {
	f.t.Helper()

	id := primitive.NewObjectID()
	doc[models.IDKey] = id
	if _, err := f.db.Collection(collection).InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create test document in %s: %v", collection, err)
	}
	return id
}
