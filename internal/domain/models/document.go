// internal/domain/models/document.go
package models

// Document is a schemaless record. Books, blogs, bookmarks and moderation
// queue entries are stored as-is, apart from the "_id" key which the store
// always assigns.
type Document map[string]any

// IDKey is the identifier key of every stored document.
const IDKey = "_id"
