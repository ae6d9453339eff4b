package home

import (
	"net/http"

	"go.uber.org/zap"
)

// Banner is the body served at the root path. Uptime checks match on it.
const Banner = "learner cafe is running"

// Handler serves the root path.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(Banner))
}
