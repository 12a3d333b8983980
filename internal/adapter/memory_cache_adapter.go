package adapter

import (
	"context"
	"maps"
	"strconv"
	"sync"
	"time"

	"trivia-orb/internal/domain"
)

// DefaultSweepInterval bounds how long an expired entry can outlive its TTL.
const DefaultSweepInterval = time.Minute

type memoryEntry struct {
	hash      map[string]string
	expiresAt time.Time
}

func (e *memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryCacheAdapter is the default in-process domain.Cache.
// Expired entries are removed by Run's ticker and, at most once per sweep
// interval, by the next write.
type MemoryCacheAdapter struct {
	mu            sync.Mutex
	entries       map[string]*memoryEntry
	now           func() time.Time
	sweepInterval time.Duration
	lastSweep     time.Time
}

// NewMemoryCacheAdapter creates an empty in-memory cache.
func NewMemoryCacheAdapter() *MemoryCacheAdapter {
	return &MemoryCacheAdapter{
		entries:       make(map[string]*memoryEntry),
		now:           time.Now,
		sweepInterval: DefaultSweepInterval,
		lastSweep:     time.Now(),
	}
}

// Run sweeps expired entries every interval until ctx is done.
func (m *MemoryCacheAdapter) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// Sweep removes every expired entry and returns how many were removed.
func (m *MemoryCacheAdapter) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sweepLocked(m.now())
}

// Len returns the number of stored keys, expired or not.
func (m *MemoryCacheAdapter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

func (m *MemoryCacheAdapter) sweepLocked(now time.Time) int {
	removed := 0
	for key, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, key)
			removed++
		}
	}
	m.lastSweep = now
	return removed
}

// lookup returns the live entry for key. Callers hold mu.
func (m *MemoryCacheAdapter) lookup(key string) (*memoryEntry, bool) {
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if e.expired(m.now()) {
		delete(m.entries, key)
		return nil, false
	}
	return e, true
}

func (m *MemoryCacheAdapter) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

func (m *MemoryCacheAdapter) Ping(_ context.Context) error {
	return nil
}

func (m *MemoryCacheAdapter) HGetAll(_ context.Context, key string) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(key)
	if !ok || len(e.hash) == 0 {
		return nil, domain.ErrCacheMiss
	}
	return maps.Clone(e.hash), nil
}

func (m *MemoryCacheAdapter) HSet(_ context.Context, key string, field string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hashFor(key)[field] = value
	return nil
}

func (m *MemoryCacheAdapter) HIncrBy(_ context.Context, key string, field string, incr int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h := m.hashFor(key)
	var current int64
	if raw, ok := h[field]; ok {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, err
		}
		current = n
	}
	current += incr
	h[field] = strconv.FormatInt(current, 10)
	return current, nil
}

func (m *MemoryCacheAdapter) Expire(_ context.Context, key string, expiration time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.lookup(key); ok {
		e.expiresAt = m.now().Add(expiration)
	}
	return nil
}

// hashFor returns the hash at key, creating it if needed. Creating a key
// also sweeps when the last sweep is older than sweepInterval. Callers hold mu.
func (m *MemoryCacheAdapter) hashFor(key string) map[string]string {
	e, ok := m.lookup(key)
	if !ok {
		if now := m.now(); now.Sub(m.lastSweep) >= m.sweepInterval {
			m.sweepLocked(now)
		}
		e = &memoryEntry{hash: make(map[string]string)}
		m.entries[key] = e
	}
	return e.hash
}

var _ domain.Cache = (*MemoryCacheAdapter)(nil)
