// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings: HTTP port, TLS, log level, CORS and request
// limits.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string        // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase       string        // Database name within MongoDB
	MongoUser           string        // Username applied as client credential (optional)
	MongoPass           string        // Password for MongoUser
	MongoMaxPoolSize    uint64        // Max connections in the driver pool
	MongoMinPoolSize    uint64        // Connections kept open when idle
	MongoConnectTimeout time.Duration // Deadline for the initial connect and ping

	// Lecture catalogue
	LectureCategories  []string // Categories accepted by /lectures/category/{category}
	LecturesCollection string   // Collection holding lectures

	// Store call deadlines (zero keeps the timeouts package default)
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration
}
