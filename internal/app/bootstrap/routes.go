// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	collectionsfeature "github.com/learnercafe/learnercafe/internal/app/features/collections"
	healthfeature "github.com/learnercafe/learnercafe/internal/app/features/health"
	homefeature "github.com/learnercafe/learnercafe/internal/app/features/home"
	lecturesfeature "github.com/learnercafe/learnercafe/internal/app/features/lectures"
	usersfeature "github.com/learnercafe/learnercafe/internal/app/features/users"
	"github.com/learnercafe/learnercafe/internal/app/system/category"
	"github.com/learnercafe/learnercafe/internal/app/system/reqlog"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// freeformCollections are served by the generic CRUD handler.
var freeformCollections = []string{
	models.BooksCollection,
	models.QueueCollection,
	models.BlogsCollection,
	models.BookmarksCollection,
}

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. CORS, body limits and TLS are applied by
// WAFFLE around the returned handler.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	return newRouter(appCfg, deps, logger), nil
}

func newRouter(appCfg AppConfig, deps DBDeps, logger *zap.Logger) chi.Router {
	db := deps.MongoDatabase

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(reqlog.Middleware(logger))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Lectures: listing, category filter, search, ownership and CRUD
	categories := category.New(appCfg.LectureCategories...)
	lecturesHandler := lecturesfeature.NewHandler(db, appCfg.LecturesCollection, categories, logger)
	lecturesHandler.MountRoutes(r)

	// Users: registration, profile, admin role, monthly statistics
	usersHandler := usersfeature.NewHandler(db, logger)
	usersHandler.MountRoutes(r)

	// Schemaless collections share one CRUD handler type
	for _, name := range freeformCollections {
		h := collectionsfeature.NewHandler(db, name, logger)
		r.Mount("/"+name, collectionsfeature.Routes(h))
		if name == models.BookmarksCollection {
			r.Get("/mybookmarks", h.ListMine)
		}
	}

	return r
}
