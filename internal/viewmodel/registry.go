package viewmodel

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSessionTTL  = 30 * time.Minute
	defaultMaxSessions = 256
)

// Closer is anything a Registry can shut down on eviction.
type Closer interface {
	Close()
}

// Registry keeps open screen sessions by id. Sessions idle for longer
// than the TTL, or pushed out by the size cap, are closed.
type Registry[V Closer] struct {
	cache *expirable.LRU[string, V]
}

// NewRegistry creates a registry. Zero values pick the defaults.
func NewRegistry[V Closer](maxSessions int, ttl time.Duration) *Registry[V] {
	if maxSessions <= 0 {
		maxSessions = defaultMaxSessions
	}
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	onEvict := func(_ string, v V) {
		// Eviction runs under the cache lock; Close waits for in-flight work.
		go v.Close()
	}
	return &Registry[V]{cache: expirable.NewLRU[string, V](maxSessions, onEvict, ttl)}
}

// Add stores v under a fresh id.
func (r *Registry[V]) Add(v V) string {
	id := uuid.NewString()
	r.cache.Add(id, v)
	return id
}

// Get returns the session and restarts its idle timer.
func (r *Registry[V]) Get(id string) (V, bool) {
	v, ok := r.cache.Get(id)
	if ok {
		r.cache.Add(id, v)
	}
	return v, ok
}

// Remove drops the session and closes it before returning.
func (r *Registry[V]) Remove(id string) bool {
	v, ok := r.cache.Peek(id)
	if !ok {
		return false
	}
	r.cache.Remove(id)
	v.Close()
	return true
}

// Len is the number of open sessions.
func (r *Registry[V]) Len() int { return r.cache.Len() }

// Purge closes every session.
func (r *Registry[V]) Purge() {
	for _, v := range r.cache.Values() {
		v.Close()
	}
	r.cache.Purge()
}
