// internal/app/features/collections/routes.go
package collections

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter with the CRUD endpoints. It is mounted once
// per collection, e.g. under /books.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Show)
	r.Patch("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
	return r
}
