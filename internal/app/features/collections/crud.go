// internal/app/features/collections/crud.go
package collections

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnercafe/learnercafe/internal/app/store/docstore"
	"github.com/learnercafe/learnercafe/internal/app/system/jsonbody"
	"github.com/learnercafe/learnercafe/internal/app/system/ownership"
	"github.com/learnercafe/learnercafe/internal/app/system/respond"
	"github.com/learnercafe/learnercafe/internal/app/system/timeouts"
	"github.com/learnercafe/learnercafe/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// List handles GET /: every document in natural order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list "+h.Name)
	defer cancel()

	out, err := h.Store.Find(ctx, bson.M{})
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, out)
}

// ListMine handles GET /mybookmarks?email= style routes: the documents
// owned by email, or all of them when no email is given.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list own "+h.Name)
	defer cancel()

	out, err := h.Store.Find(ctx, ownership.FromRequest(r))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, out)
}

// Show handles GET /{id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := docstore.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "get "+h.Name)
	defer cancel()

	doc, err := h.Store.Get(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, doc)
}

// Create handles POST /. The body is stored as given, except that any
// client-supplied _id is dropped and a fresh ObjectID assigned.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := jsonbody.Object(r)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	delete(body, models.IDKey)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "create "+h.Name)
	defer cancel()

	res, err := h.Store.Insert(ctx, models.Document(body))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Debug("document created", zap.Any("id", res.InsertedID))
	respond.OK(w, res)
}

// Update handles PATCH /{id}: every supplied field except _id is set, and a
// missing document is created.
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
	delete(body, models.IDKey)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "patch "+h.Name)
	defer cancel()

	res, err := h.Store.Set(ctx, id, bson.M(body), true)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, res)
}

// Delete handles DELETE /{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := docstore.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "delete "+h.Name)
	defer cancel()

	res, err := h.Store.Delete(ctx, id)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, res)
}
