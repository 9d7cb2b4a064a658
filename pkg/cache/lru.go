package cache

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"orderlookup/pkg/logger"
	"orderlookup/pkg/metric"
)

var _ Cache[string, int] = (*LRUCache[string, int])(nil)

// LRUCache is a bounded cache with sliding expiration: every Get renews the entry's TTL.
type LRUCache[K comparable, V any] struct {
	mutex   sync.Mutex
	items   map[K]*list.Element
	order   *list.List
	log     logger.Logger
	metrics metric.Session
	now     func() time.Time

	capacity    int
	cleanupStop chan struct{}
	onEvicted   func(key K, value V, reason string)
}

type entry[K comparable, V any] struct {
	key     K
	value   V
	ttl     time.Duration
	expires time.Time
}

type evicted[K comparable, V any] struct {
	key    K
	value  V
	reason string
}

func NewLRUCache[K comparable, V any](
	capacity int,
	log logger.Logger,
	metrics metric.Session,
) (*LRUCache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("cache.NewLRUCache: capacity must be positive, got %d", capacity)
	}

	return &LRUCache[K, V]{
		items:    make(map[K]*list.Element),
		order:    list.New(),
		log:      log,
		metrics:  metrics,
		now:      time.Now,
		capacity: capacity,
	}, nil
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mutex.Lock()
	elem, ok := c.items[key]
	if !ok {
		c.mutex.Unlock()
		c.metrics.Miss()
		return zero, false
	}

	e := elem.Value.(*entry[K, V])
	now := c.now()
	if e.expired(now) {
		gone := c.removeLocked(elem, ReasonExpired)
		c.mutex.Unlock()
		c.notify(gone)
		c.metrics.Miss()
		return zero, false
	}

	if e.ttl > 0 {
		e.expires = now.Add(e.ttl)
	}
	c.order.MoveToFront(elem)
	c.mutex.Unlock()

	c.metrics.Hit()
	return e.value, true
}

func (c *LRUCache[K, V]) Put(key K, value V, ttl time.Duration) {
	var gone []evicted[K, V]

	c.mutex.Lock()
	e := &entry[K, V]{key: key, value: value, ttl: ttl}
	if ttl > 0 {
		e.expires = c.now().Add(ttl)
	}

	if elem, ok := c.items[key]; ok {
		elem.Value = e
		c.order.MoveToFront(elem)
	} else {
		for c.order.Len() >= c.capacity {
			gone = append(gone, c.removeLocked(c.order.Back(), ReasonCapacity))
		}
		c.items[key] = c.order.PushFront(e)
	}
	size := c.order.Len()
	c.mutex.Unlock()

	c.metrics.Size(size)
	c.notify(gone...)
}

func (c *LRUCache[K, V]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.order.Len()
}

func (c *LRUCache[K, V]) Purge() {
	c.mutex.Lock()
	gone := make([]evicted[K, V], 0, c.order.Len())
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		e := elem.Value.(*entry[K, V])
		gone = append(gone, evicted[K, V]{key: e.key, value: e.value, reason: ReasonPurged})
		c.metrics.Eviction(ReasonPurged)
	}
	c.order.Init()
	clear(c.items)
	c.mutex.Unlock()

	c.metrics.Size(0)
	c.notify(gone...)
}

func (c *LRUCache[K, V]) StartCleanup(interval time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.cleanupStop != nil {
		close(c.cleanupStop)
	}

	stop := make(chan struct{})
	c.cleanupStop = stop
	go c.runCleanup(interval, stop)
}

func (c *LRUCache[K, V]) StopCleanup() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.cleanupStop != nil {
		close(c.cleanupStop)
		c.cleanupStop = nil
	}
}

func (c *LRUCache[K, V]) SetOnEvicted(onEvicted func(key K, value V, reason string)) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.onEvicted = onEvicted
}

func (c *LRUCache[K, V]) runCleanup(interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanupExpired()
		case <-stop:
			return
		}
	}
}

func (c *LRUCache[K, V]) cleanupExpired() {
	c.mutex.Lock()
	now := c.now()
	var gone []evicted[K, V]
	for elem := c.order.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry[K, V]).expired(now) {
			gone = append(gone, c.removeLocked(elem, ReasonExpired))
		}
		elem = prev
	}
	remaining := c.order.Len()
	c.mutex.Unlock()

	if len(gone) == 0 {
		return
	}

	c.log.Debugw("cache cleanup completed",
		"removed", len(gone),
		"remaining", remaining,
	)
	c.notify(gone...)
}

// removeLocked must be called with c.mutex held.
func (c *LRUCache[K, V]) removeLocked(elem *list.Element, reason string) evicted[K, V] {
	e := elem.Value.(*entry[K, V])
	c.order.Remove(elem)
	delete(c.items, e.key)

	c.metrics.Eviction(reason)
	c.metrics.Size(c.order.Len())

	return evicted[K, V]{key: e.key, value: e.value, reason: reason}
}

func (c *LRUCache[K, V]) notify(gone ...evicted[K, V]) {
	c.mutex.Lock()
	onEvicted := c.onEvicted
	c.mutex.Unlock()

	if onEvicted == nil {
		return
	}
	for _, g := range gone {
		onEvicted(g.key, g.value, g.reason)
	}
}

func (e *entry[K, V]) expired(now time.Time) bool {
	return !e.expires.IsZero() && now.After(e.expires)
}
