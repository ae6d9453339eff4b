// internal/app/features/lectures/list.go
package lectures

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/learnercafe/learnercafe/internal/app/system/ownership"
	"github.com/learnercafe/learnercafe/internal/app/system/respond"
	"github.com/learnercafe/learnercafe/internal/app/system/textsearch"
	"github.com/learnercafe/learnercafe/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// List handles GET /lectures: every lecture, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list lectures")
	defer cancel()

	out, err := h.Store.All(ctx)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, out)
}

// ListByCategory handles GET /lectures/category/{category}. Categories
// outside the whitelist are answered with 404.
func (h *Handler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "category")

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list lectures by category")
	defer cancel()

	out, err := h.Store.ByCategory(ctx, token)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, out)
}

// SearchByTopic handles GET /documentSearchByTopicName/{text}, matching the
// topic or the subject name.
func (h *Handler) SearchByTopic(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, textsearch.Topic)
}

// SearchBySubject handles GET /documentSearchBySubName/{text}.
func (h *Handler) SearchBySubject(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, textsearch.Subject)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, mode textsearch.Mode) {
	// chi matches against RawPath when the request carried escapes that
	// Path cannot represent; only then is the parameter still escaped.
	text := chi.URLParam(r, "text")
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(text); err == nil {
			text = unescaped
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "search lectures")
	defer cancel()

	out, err := h.Store.Search(ctx, mode, text)
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	h.Log.Debug("lecture search",
		zap.Stringer("mode", mode),
		zap.String("text", text),
		zap.Int("results", len(out)))
	respond.OK(w, out)
}

// ListMine handles GET /myLectures?email=. Without an email every lecture
// is returned.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list own lectures")
	defer cancel()

	out, err := h.Store.ByOwner(ctx, ownership.Owner(r))
	if err != nil {
		respond.Error(w, r, h.Log, err)
		return
	}
	respond.OK(w, out)
}
