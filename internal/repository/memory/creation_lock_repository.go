package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// CreationLockRepository serializes conversation auto-creation per user.
// Two rapid first-messages from the same user would otherwise race the
// create-if-absent step and produce duplicate conversations.
type CreationLockRepository struct {
	cache *cache.Cache
	mu    sync.Mutex
}

func NewCreationLockRepository() *CreationLockRepository {
	// Locks are held for the duration of one request; the TTL is only a
	// safety net against a request that never released.
	c := cache.New(30*time.Second, 1*time.Minute)
	return &CreationLockRepository{
		cache: c,
	}
}

func (r *CreationLockRepository) lock(userId uuid.UUID) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := userId.String()
	if x, found := r.cache.Get(key); found {
		return x.(*sync.Mutex)
	}
	m := &sync.Mutex{}
	r.cache.Set(key, m, cache.DefaultExpiration)
	return m
}

// Acquire blocks until this process holds the creation lock for the user.
// The returned func releases it.
func (r *CreationLockRepository) Acquire(userId uuid.UUID) func() {
	m := r.lock(userId)
	m.Lock()
	return m.Unlock
}
