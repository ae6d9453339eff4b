// internal/app/features/lectures/routes.go
package lectures

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the lecture routes on the root router. The paths are
// fixed by existing clients, so they are registered at top level instead of
// under a common prefix.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/lectures", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/category/{category}", h.ListByCategory)
		r.Get("/{id}", h.Show)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	r.Get("/documentSearchByTopicName/{text}", h.SearchByTopic)
	r.Get("/documentSearchByTopicName/", h.SearchByTopic)
	r.Get("/documentSearchBySubName/{text}", h.SearchBySubject)
	r.Get("/documentSearchBySubName/", h.SearchBySubject)
	r.Get("/myLectures", h.ListMine)

	// Paths from the first API revision.
	r.Get("/alllecture", h.List)
	r.Post("/alllecture", h.Create)
	r.Get("/alllecture/{category}", h.ListByCategory)
	r.Get("/myLecture", h.ListMine)
}
