// internal/domain/models/writeresult.go
package models

// WriteResult reports the outcome of a mutation. It is returned verbatim to
// clients by every POST, PATCH and DELETE route.
//
// InsertedID is set by inserts and by updates that upserted a new document.
type WriteResult struct {
	InsertedID    any   `json:"insertedId,omitempty"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	DeletedCount  int64 `json:"deletedCount"`
}
