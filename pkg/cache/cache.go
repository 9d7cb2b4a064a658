package cache

import (
	"time"
)

// Eviction reasons passed to the OnEvicted callback and to metrics.
const (
	ReasonCapacity = "capacity"
	ReasonExpired  = "expired"
	ReasonPurged   = "purged"
)

type Cache[K comparable, V any] interface {
	Get(key K) (V, bool)
	Put(key K, value V, ttl time.Duration)
	Len() int
	Purge()
	StartCleanup(interval time.Duration)
	StopCleanup()
	SetOnEvicted(onEvicted func(key K, value V, reason string))
}
