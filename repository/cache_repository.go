package repository

import "time"

// CacheRepository is a string cache with per-entry expiration.
// ttl == 0 means the entry never expires.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration) error
}
