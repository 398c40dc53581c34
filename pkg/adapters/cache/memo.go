package cache

import (
	"sync"
	"time"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/ports"
)

type entry struct {
	mode    domain.TextInjectMode
	ok      bool
	expires time.Time
}

type memoMiddleware struct {
	next ports.MatchInfoProvider
	ttl  time.Duration
	now  func() time.Time

	mu      sync.RWMutex
	entries map[int]entry
}

// NewMemoMiddleware creates a middleware that remembers lookups, misses included,
// so that a slow backend is asked at most once per match id and ttl.
// A zero ttl keeps entries forever. Failed lookups reported through
// ports.MatchInfoLookup are never remembered.
func NewMemoMiddleware(ttl time.Duration) Middleware {
	return func(next ports.MatchInfoProvider) ports.MatchInfoProvider {
		return &memoMiddleware{
			next:    next,
			ttl:     ttl,
			now:     time.Now,
			entries: make(map[int]entry),
		}
	}
}

func (m *memoMiddleware) ForceMode(matchID int) (domain.TextInjectMode, bool) {
	mode, ok, _ := m.LookupForceMode(matchID)
	return mode, ok
}

func (m *memoMiddleware) LookupForceMode(matchID int) (domain.TextInjectMode, bool, error) {
	now := m.now()

	m.mu.RLock()
	e, found := m.entries[matchID]
	m.mu.RUnlock()
	if found && (m.ttl == 0 || now.Before(e.expires)) {
		return e.mode, e.ok, nil
	}

	mode, ok, err := ports.LookupForceMode(m.next, matchID)
	if err != nil {
		return domain.TextInjectModeDefault, false, err
	}

	m.mu.Lock()
	m.entries[matchID] = entry{mode: mode, ok: ok, expires: now.Add(m.ttl)}
	m.mu.Unlock()

	return mode, ok, nil
}
