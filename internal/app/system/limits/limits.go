// internal/app/system/limits/limits.go
package limits

// Request body size limits.
const (
	// MaxJSONBody is the largest JSON request body read by any handler.
	// Lecture and document bodies are a few short strings; links point to
	// externally hosted files.
	MaxJSONBody = 1 << 20 // 1 MB
)
