// internal/app/features/users/routes.go
package users

import "github.com/go-chi/chi/v5"

// MountRoutes mounts the user routes on the root router.
//
// GET and PATCH on /users/admin/{key} share one parameter: GET reads it as
// an email, PATCH as a user id.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/users", h.List)
	r.Post("/users", h.Register)
	r.Get("/users/admin/{key}", h.CheckAdmin)
	r.Patch("/users/admin/{key}", h.MakeAdmin)
	r.Patch("/user/{id}", h.UpdateProfile)
	r.Get("/monthlyUserRegistration", h.MonthlyRegistrations)
}
