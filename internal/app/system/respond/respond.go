// internal/app/system/respond/respond.go
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/learnercafe/learnercafe/internal/app/system/apperr"
	"github.com/learnercafe/learnercafe/internal/app/system/reqlog"
	"go.uber.org/zap"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error string `json:"error"`
}

// JSON writes v as the response body with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes v with status 200.
func OK(w http.ResponseWriter, v any) {
	JSON(w, http.StatusOK, v)
}

// Error answers a failed request. Classified errors (see apperr) are
// returned with their message; anything else is logged and reported with a
// generic body so store internals never reach the client.
func Error(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("request_id", reqlog.ID(r.Context())),
			zap.Error(err))
		JSON(w, status, errorBody{Error: "internal server error"})
		return
	}
	JSON(w, status, errorBody{Error: err.Error()})
}
