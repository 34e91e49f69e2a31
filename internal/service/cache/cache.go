package cache

import "time"

// BytesCache is a minimal cache API storing raw bytes with TTL. The indicator
// engine serializes snapshots through it so the in-memory and Redis backends
// are interchangeable.
type BytesCache interface {
	GetBytes(key string) (b []byte, ok bool, err error)
	SetBytes(key string, value []byte, ttl time.Duration) error
}
