// internal/app/features/users/handler.go
package users

import (
	userstore "github.com/learnercafe/learnercafe/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves user registration, profile, admin role and registration
// statistics endpoints.
type Handler struct {
	Store *userstore.Store
	Log   *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Store: userstore.New(db),
		Log:   logger,
	}
}
