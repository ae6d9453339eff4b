// Package ownership scopes listings to the documents of one owner.
//
// An absent owner means no scoping at all: the whole collection is
// returned. Callers that want a private view must always pass the owner.
package ownership

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
)

// Param is the query parameter carrying the owner's email.
const Param = "email"

// Filter selects documents whose email equals owner exactly. An empty owner
// selects every document.
func Filter(owner string) bson.M {
	if owner == "" {
		return bson.M{}
	}
	return bson.M{"email": owner}
}

// Owner reads the owner email from the request query string.
func Owner(r *http.Request) string {
	return query.Get(r, Param)
}

// FromRequest is Filter(Owner(r)).
func FromRequest(r *http.Request) bson.M {
	return Filter(Owner(r))
}
