// internal/domain/models/collections.go
package models

// Collection names. The lectures collection name is configurable (see
// bootstrap); DefaultLecturesCollection matches the existing database.
const (
	DefaultLecturesCollection = "lectureSlide"

	UsersCollection     = "users"
	BookmarksCollection = "bookmarks"
	BooksCollection     = "books"
	QueueCollection     = "queueDoc"
	BlogsCollection     = "blogs"
)
