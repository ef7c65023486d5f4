package cache

import (
	"context"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// MemoryStore is a process-local Store used when no Redis is configured.
// Expired entries are dropped lazily on access.
type MemoryStore struct {
	items cmap.ConcurrentMap[string, memoryEntry]
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: cmap.New[memoryEntry](),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, error) {
	e, ok := s.items.Get(key)
	if !ok {
		return nil, ErrMiss
	}
	if now := s.now(); e.expired(now) {
		s.items.RemoveCb(key, func(_ string, v memoryEntry, exists bool) bool {
			return exists && v.expired(now)
		})
		return nil, ErrMiss
	}
	return e.value, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memoryEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.items.Set(key, e)
	return nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		s.items.Remove(k)
	}
	return nil
}

func (s *MemoryStore) Keys(_ context.Context, pattern string) ([]string, error) {
	now := s.now()
	keys := make([]string, 0)
	for item := range s.items.IterBuffered() {
		if item.Val.expired(now) {
			continue
		}
		if matchGlob(pattern, item.Key) {
			keys = append(keys, item.Key)
		}
	}
	return keys, nil
}

// matchGlob implements the subset of Redis glob syntax the service uses:
// '*' matches any run of characters (including ':' and '/'), '?' matches one.
func matchGlob(pattern, s string) bool {
	p, i := 0, 0
	starP, starI := -1, 0
	for i < len(s) {
		switch {
		case p < len(pattern) && (pattern[p] == '?' || pattern[p] == s[i]):
			p++
			i++
		case p < len(pattern) && pattern[p] == '*':
			starP, starI = p, i
			p++
		case starP != -1:
			p = starP + 1
			starI++
			i = starI
		default:
			return false
		}
	}
	for p < len(pattern) && pattern[p] == '*' {
		p++
	}
	return p == len(pattern)
}
