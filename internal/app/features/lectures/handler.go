// internal/app/features/lectures/handler.go
package lectures

import (
	lecturestore "github.com/learnercafe/learnercafe/internal/app/store/lectures"
	"github.com/learnercafe/learnercafe/internal/app/system/category"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the lecture listing, search and CRUD endpoints.
type Handler struct {
	Store *lecturestore.Store
	Log   *zap.Logger
}

// NewHandler constructs a lectures Handler over db.collection. categories
// is the whitelist applied to /lectures/category/{category}.
func NewHandler(db *mongo.Database, collection string, categories *category.Filter, logger *zap.Logger) *Handler {
	return &Handler{
		Store: lecturestore.New(db, collection, categories),
		Log:   logger,
	}
}
