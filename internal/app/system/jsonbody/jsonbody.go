// Package jsonbody decodes JSON request bodies.
package jsonbody

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/learnercafe/learnercafe/internal/app/system/apperr"
	"github.com/learnercafe/learnercafe/internal/app/system/limits"
)

// ErrMalformed is returned for bodies that are not valid JSON for the
// target value.
var ErrMalformed = apperr.New(apperr.Invalid, "malformed JSON body")

// Decode reads r's body into v. An empty body leaves v untouched. Bodies
// over limits.MaxJSONBody are cut off and fail as malformed.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(io.LimitReader(r.Body, limits.MaxJSONBody)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return nil
}

// Object reads r's body as a JSON object. An empty body yields an empty map.
func Object(r *http.Request) (map[string]any, error) {
	body := map[string]any{}
	if err := Decode(r, &body); err != nil {
		return nil, err
	}
	if body == nil {
		// A literal null body.
		body = map[string]any{}
	}
	return body, nil
}
