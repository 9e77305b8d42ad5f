// Package cache stores serialized parse results keyed by document content,
// so re-running a batch over unchanged report files skips the parse.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for parse-result caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// ContentKey derives a cache key from raw document bytes. Keying on content
// rather than path means edits invalidate naturally and renames still hit.
func ContentKey(content []byte) string {
	hash := sha256.Sum256(content)
	return "ocmr:v1:" + hex.EncodeToString(hash[:])
}
