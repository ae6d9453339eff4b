package collections_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/learnercafe/learnercafe/internal/app/features/collections"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"github.com/learnercafe/learnercafe/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (http.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()

	r := chi.NewRouter()
	for _, name := range []string{models.BooksCollection, models.BlogsCollection} {
		r.Mount("/"+name, collections.Routes(collections.NewHandler(db, name, logger)))
	}
	bookmarks := collections.NewHandler(db, models.BookmarksCollection, logger)
	r.Mount("/bookmarks", collections.Routes(bookmarks))
	r.Get("/mybookmarks", bookmarks.ListMine)
	return r, testutil.NewFixtures(t, db)
}

func serve(router http.Handler, req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCRUD_Lifecycle(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rec := serve(router, testutil.NewJSONRequest(t, "POST", "/books", map[string]any{
		"_id":    "mine",
		"title":  "SICP",
		"author": "Abelson",
		"tags":   []string{"lisp", "classic"},
	}))
	rec.AssertStatus(t, http.StatusOK)
	var created struct {
		InsertedID primitive.ObjectID `json:"insertedId"`
	}
	rec.DecodeJSON(t, &created)
	require.False(t, created.InsertedID.IsZero())
	id := created.InsertedID.Hex()

	rec = serve(router, testutil.NewRequest("GET", "/books/"+id))
	rec.AssertStatus(t, http.StatusOK)
	var got map[string]any
	rec.DecodeJSON(t, &got)
	assert.Equal(t, id, got["_id"])
	assert.Equal(t, "SICP", got["title"])
	assert.Equal(t, []any{"lisp", "classic"}, got["tags"])

	rec = serve(router, testutil.NewJSONRequest(t, "PATCH", "/books/"+id, map[string]any{
		"_id":   primitive.NewObjectID().Hex(),
		"title": "SICP 2e",
		"year":  1996,
	}))
	rec.AssertStatus(t, http.StatusOK)
	assert.JSONEq(t, `{"matchedCount":1,"modifiedCount":1,"deletedCount":0}`, rec.Body.String())

	var stored bson.M
	require.NoError(t, fx.DB().Collection(models.BooksCollection).FindOne(ctx, bson.M{"_id": created.InsertedID}).Decode(&stored))
	assert.Equal(t, "SICP 2e", stored["title"])
	assert.Equal(t, "Abelson", stored["author"])
	assert.EqualValues(t, 1996, stored["year"])

	rec = serve(router, testutil.NewRequest("DELETE", "/books/"+id))
	rec.AssertStatus(t, http.StatusOK)
	assert.JSONEq(t, `{"matchedCount":0,"modifiedCount":0,"deletedCount":1}`, rec.Body.String())

	rec = serve(router, testutil.NewRequest("GET", "/books/"+id))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestList_IsolatedPerCollection(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fx.CreateDocument(ctx, models.BooksCollection, models.Document{"title": "A"})
	fx.CreateDocument(ctx, models.BooksCollection, models.Document{"title": "B"})
	fx.CreateDocument(ctx, models.BlogsCollection, models.Document{"headline": "C"})

	rec := serve(router, testutil.NewRequest("GET", "/books"))
	rec.AssertStatus(t, http.StatusOK)
	var books []map[string]any
	rec.DecodeJSON(t, &books)
	assert.Len(t, books, 2)

	rec = serve(router, testutil.NewRequest("GET", "/blogs"))
	var blogs []map[string]any
	rec.DecodeJSON(t, &blogs)
	require.Len(t, blogs, 1)
	assert.Equal(t, "C", blogs[0]["headline"])
}

func TestList_EmptyIsArray(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := serve(router, testutil.NewRequest("GET", "/blogs"))
	rec.AssertStatus(t, http.StatusOK)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestPatch_UpsertsMissing(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	id := primitive.NewObjectID()
	rec := serve(router, testutil.NewJSONRequest(t, "PATCH", "/blogs/"+id.Hex(), map[string]any{"headline": "draft"}))
	rec.AssertStatus(t, http.StatusOK)

	var stored bson.M
	require.NoError(t, fx.DB().Collection(models.BlogsCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&stored))
	assert.Equal(t, bson.M{"_id": id, "headline": "draft"}, stored)
}

func TestMalformedID(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, method := range []string{"GET", "PATCH", "DELETE"} {
		rec := serve(router, testutil.NewJSONRequest(t, method, "/books/123", map[string]any{}))
		rec.AssertStatus(t, http.StatusBadRequest)
	}
}

func TestListMine(t *testing.T) {
	router, fx := newTestRouter(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	mine := fx.CreateDocument(ctx, models.BookmarksCollection, models.Document{"email": "me@example.com", "lectureId": "x"})
	fx.CreateDocument(ctx, models.BookmarksCollection, models.Document{"email": "you@example.com", "lectureId": "y"})

	rec := serve(router, testutil.NewRequest("GET", "/mybookmarks?email=me@example.com"))
	rec.AssertStatus(t, http.StatusOK)
	var got []map[string]any
	rec.DecodeJSON(t, &got)
	require.Len(t, got, 1)
	assert.Equal(t, mine.Hex(), got[0]["_id"])

	rec = serve(router, testutil.NewRequest("GET", "/mybookmarks"))
	got = nil
	rec.DecodeJSON(t, &got)
	assert.Len(t, got, 2)
}
