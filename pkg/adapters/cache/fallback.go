package cache

import (
	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/ports"
)

type defaultModeMiddleware struct {
	next ports.MatchInfoProvider
	mode domain.TextInjectMode
}

// NewDefaultModeMiddleware creates a middleware that answers with mode
// whenever the wrapped provider has no override for a match.
// Passing domain.TextInjectModeDefault makes it a no-op.
func NewDefaultModeMiddleware(mode domain.TextInjectMode) Middleware {
	return func(next ports.MatchInfoProvider) ports.MatchInfoProvider {
		if !mode.IsOverride() {
			return next
		}
		return &defaultModeMiddleware{next: next, mode: mode}
	}
}

func (m *defaultModeMiddleware) ForceMode(matchID int) (domain.TextInjectMode, bool) {
	mode, ok, _ := m.LookupForceMode(matchID)
	return mode, ok
}

// LookupForceMode substitutes the default mode for misses and failures alike,
// but still reports the failure to outer middlewares.
func (m *defaultModeMiddleware) LookupForceMode(matchID int) (domain.TextInjectMode, bool, error) {
	mode, ok, err := ports.LookupForceMode(m.next, matchID)
	if ok {
		return mode, true, nil
	}
	return m.mode, true, err
}
