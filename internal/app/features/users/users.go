// internal/app/features/users/users.go
package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnercafe/learnercafe/internal/app/store/docstore"
	userstore "github.com/learnercafe/learnercafe/internal/app/store/users"
	"github.com/learnercafe/learnercafe/internal/app/system/jsonbody"
	"github.com/learnercafe/learnercafe/internal/app/system/respond"
	"github.com/learnercafe/learnercafe/internal/app/system/timeouts"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.uber.org/zap"
)

// messageBody is the marker answered instead of an error status when a
// registration collides with an existing email.
type messageBody struct {
	Message string `json:"message"`
}

type adminBody struct {
	Admin bool `json:"admin"`
}

// List handles GET /users.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	out, err := h.Store.List(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, out)
}

// Register handles POST /users. A taken email is answered with 200 and
// {"message":"user already exist"}; nothing is written.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := jsonbody.Decode(r, &u); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	// Role is granted only through the admin route.
	u.Role = ""

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "register user")
	defer cancel()

	res, err := h.Store.Register(ctx, u)
	if errors.Is(err, userstore.ErrDuplicateEmail) {
		respond.OK(w, messageBody{Message: userstore.ErrDuplicateEmail.Msg})
		return
	}
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("user registered", zap.String("email", u.Email))
	respond.OK(w, res)
}

// CheckAdmin handles GET /users/admin/{email}.
func (h *Handler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "key")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "check admin")
	defer cancel()

	admin, err := h.Store.IsAdmin(ctx, email)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, adminBody{Admin: admin})
}

// MakeAdmin handles PATCH /users/admin/{id}. An unknown id is not an
// error; the result reports zero matches.
func (h *Handler) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, err := docstore.ParseID(chi.URLParam(r, "key"))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "make admin")
	defer cancel()

	res, err := h.Store.SetAdmin(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if res.MatchedCount > 0 {
		h.Log.Info("admin role granted", zap.String("user_id", id.Hex()))
	}
	respond.OK(w, res)
}

// UpdateProfile handles PATCH /user/{id}.
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := docstore.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	body, err := jsonbody.Object(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "update profile")
	defer cancel()

	res, err := h.Store.UpdateProfile(ctx, id, body)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, res)
}

// MonthlyRegistrations handles GET /monthlyUserRegistration.
func (h *Handler) MonthlyRegistrations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Long(), h.Log, "monthly registrations")
	defer cancel()

	rep, err := h.Store.MonthlyRegistrations(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	if rep.Skipped > 0 {
		h.Log.Warn("users with unreadable registration date left out of monthly counts",
			zap.Int("skipped", rep.Skipped),
			zap.Int("scanned", rep.Scanned))
	}
	respond.OK(w, rep.Counts)
}
