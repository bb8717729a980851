package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Cache defines the interface for caching loaded documents. Values are the
// normalized line slices a document splits into; callers must not mutate
// a returned slice.
type Cache interface {
	Get(key string) ([]string, bool)
	Set(key string, lines []string, ttl time.Duration)
	Flush()
}

// Key generates a cache key for a document. The key covers path, mtime and
// size so an edited file never serves stale lines.
func Key(path string, modTime time.Time, size int64) string {
	hash := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", path, modTime.UnixNano(), size)))
	return "wraplint:v1:" + hex.EncodeToString(hash[:])
}
