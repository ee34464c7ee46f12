// Package cache provides the result cache used by batch processing.
//
// Validating or adapting a large gallery of SVG files is dominated by
// re-reading files that have not changed. The cache stores pipeline
// results keyed by the content hash of the source document, so unchanged
// files are skipped on subsequent runs.
//
// Backends:
//   - FileCache: per-user cache directory, the CLI default
//   - RedisCache: shared cache for server deployments
//   - NullCache: caching disabled
package cache

import (
	"context"
	"time"
)

// Default TTLs per result kind.
const (
	// TTLValidation is how long a validation result stays cached.
	TTLValidation = 7 * 24 * time.Hour

	// TTLAdapted is how long an adapted document stays cached.
	TTLAdapted = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return is false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for the pipeline's result kinds.
type Keyer interface {
	// ValidationKey keys a validation result by document content hash.
	ValidationKey(docHash string) string

	// AdaptKey keys an adapted document by content hash and the options
	// that shaped the transform.
	AdaptKey(docHash string, opts AdaptKeyOpts) string
}

// AdaptKeyOpts are the option fields that change an adapted document and
// therefore participate in its cache key.
type AdaptKeyOpts struct {
	MinArea        float64  `json:"min_area"`
	MinStrokeWidth float64  `json:"min_stroke_width"`
	Palette        []string `json:"palette"`
}

// DefaultKeyer is the standard key scheme: "kind:sha256(parts)".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ValidationKey implements Keyer.
func (k *DefaultKeyer) ValidationKey(docHash string) string {
	return hashKey("validation", docHash)
}

// AdaptKey implements Keyer.
func (k *DefaultKeyer) AdaptKey(docHash string, opts AdaptKeyOpts) string {
	return hashKey("adapt", docHash, opts)
}
