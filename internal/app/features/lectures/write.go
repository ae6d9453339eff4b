// internal/app/features/lectures/write.go
package lectures

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnercafe/learnercafe/internal/app/store/docstore"
	"github.com/learnercafe/learnercafe/internal/app/system/jsonbody"
	"github.com/learnercafe/learnercafe/internal/app/system/respond"
	"github.com/learnercafe/learnercafe/internal/app/system/timeouts"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.uber.org/zap"
)

// Show handles GET /lectures/{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := docstore.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get lecture")
	defer cancel()

	l, err := h.Store.Get(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, l)
}

// Create handles POST /lectures. Fields outside the lecture shape are
// ignored.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var l models.Lecture
	if err := jsonbody.Decode(r, &l); err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create lecture")
	defer cancel()

	res, err := h.Store.Create(ctx, l)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Info("lecture created",
		zap.Any("id", res.InsertedID),
		zap.String("category", l.Category),
		zap.String("email", l.Email))
	respond.OK(w, res)
}

// Update handles PATCH /lectures/{id}. Only whitelisted fields are written
// and a missing lecture is created.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "patch lecture")
	defer cancel()

	res, err := h.Store.Patch(ctx, id, body)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, res)
}

// Delete handles DELETE /lectures/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := docstore.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete lecture")
	defer cancel()

	res, err := h.Store.Delete(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, res)
}
