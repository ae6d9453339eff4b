package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/learnercafe/learnercafe/internal/app/system/reqlog"
	"github.com/learnercafe/learnercafe/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRouter_Endpoints(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	deps := DBDeps{MongoClient: db.Client(), MongoDatabase: db}
	cfg := validConfig()
	if err := EnsureSchema(ctx, nil, cfg, deps, testLogger()); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	router := newRouter(cfg, deps, testLogger())

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/", http.StatusOK},
		{"GET", "/health", http.StatusOK},
		{"GET", "/lectures", http.StatusOK},
		{"GET", "/alllecture", http.StatusOK},
		{"GET", "/lectures/category/slide", http.StatusOK},
		{"GET", "/lectures/category/CSE", http.StatusNotFound},
		{"GET", "/lectures/zzz", http.StatusBadRequest},
		{"GET", "/documentSearchByTopicName/x", http.StatusOK},
		{"GET", "/documentSearchBySubName/x", http.StatusOK},
		{"GET", "/myLectures?email=a@b.c", http.StatusOK},
		{"GET", "/users", http.StatusOK},
		{"GET", "/users/admin/a@b.c", http.StatusOK},
		{"GET", "/monthlyUserRegistration", http.StatusOK},
		{"GET", "/books", http.StatusOK},
		{"GET", "/queueDoc", http.StatusOK},
		{"GET", "/blogs", http.StatusOK},
		{"GET", "/bookmarks", http.StatusOK},
		{"GET", "/mybookmarks?email=a@b.c", http.StatusOK},
		{"GET", "/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, tt.want, rec.Code, "%s %s: %s", tt.method, tt.path, rec.Body.String())
		assert.NotEmpty(t, rec.Header().Get(reqlog.Header), tt.path)
	}
}

func TestRouter_Home(t *testing.T) {
	db := testutil.SetupTestDB(t)
	router := newRouter(validConfig(), DBDeps{MongoClient: db.Client(), MongoDatabase: db}, testLogger())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.True(t, strings.Contains(rec.Body.String(), "learner cafe is running"))
}
