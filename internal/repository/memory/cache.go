package memory

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// purgeInterval is how often expired records are swept when a retention TTL
// is configured.
const purgeInterval = 10 * time.Minute

// newEntityCache builds the backing cache for one entity type. A zero or
// negative TTL keeps records for the lifetime of the process, matching the
// unbounded retention of the original system; a positive TTL makes eviction
// an explicit operational choice.
func newEntityCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		return cache.New(cache.NoExpiration, 0)
	}
	return cache.New(ttl, purgeInterval)
}

// lockMap hands out one mutex per record id so that mutations of the same
// session serialize while different sessions proceed without contention.
type lockMap struct {
	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func newLockMap() *lockMap {
	return &lockMap{locks: make(map[int]*sync.Mutex)}
}

func (l *lockMap) get(id int) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	return m
}
