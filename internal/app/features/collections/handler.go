// internal/app/features/collections/handler.go
package collections

import (
	"github.com/learnercafe/learnercafe/internal/app/store/docstore"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves schemaless CRUD over one collection. The same handler
// type backs books, the moderation queue, blogs and bookmarks.
type Handler struct {
	Name  string
	Store *docstore.Store[models.Document]
	Log   *zap.Logger
}

// NewHandler constructs a Handler over db.collection.
func NewHandler(db *mongo.Database, collection string, logger *zap.Logger) *Handler {
	return &Handler{
		Name:  collection,
		Store: docstore.New[models.Document](db, collection),
		Log:   logger.With(zap.String("collection", collection)),
	}
}
