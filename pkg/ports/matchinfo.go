package ports

import (
	"context"

	"github.com/aretw0/typist/pkg/domain"
)

// MatchInfoProvider answers per-match questions asked by pipeline stages.
// Implementations must be total: a missing or unreachable entry is reported
// as "no override" (ok == false), never as a failure.
type MatchInfoProvider interface {
	// ForceMode returns the text injection mode forced by the match, if any.
	ForceMode(matchID int) (mode domain.TextInjectMode, ok bool)
}

// MatchInfoProviderFunc adapts an ordinary function to MatchInfoProvider.
type MatchInfoProviderFunc func(matchID int) (domain.TextInjectMode, bool)

// ForceMode calls f(matchID).
func (f MatchInfoProviderFunc) ForceMode(matchID int) (domain.TextInjectMode, bool) {
	return f(matchID)
}

// MatchInfoLookup is implemented by providers that can tell a missing entry
// from a failed lookup. On failure mode and ok still hold the answer to use.
type MatchInfoLookup interface {
	LookupForceMode(matchID int) (mode domain.TextInjectMode, ok bool, err error)
}

// LookupForceMode queries p, reporting backend failures when p implements
// MatchInfoLookup. Other providers never fail.
func LookupForceMode(p MatchInfoProvider, matchID int) (domain.TextInjectMode, bool, error) {
	if l, ok := p.(MatchInfoLookup); ok {
		return l.LookupForceMode(matchID)
	}
	mode, ok := p.ForceMode(matchID)
	return mode, ok, nil
}

// MatchInfoStore is a writable backend for match information.
// Stores double as providers so they can be handed to the pipeline directly.
type MatchInfoStore interface {
	MatchInfoProvider

	// Put records the forced mode of a match, replacing any previous entry.
	Put(ctx context.Context, matchID int, mode domain.TextInjectMode) error

	// Get retrieves the forced mode of a match.
	// Returns domain.ErrMatchNotFound if the match has no entry.
	Get(ctx context.Context, matchID int) (domain.TextInjectMode, error)

	// Delete removes the entry of a match. Deleting a missing entry is not an error.
	Delete(ctx context.Context, matchID int) error

	// List returns every stored entry.
	List(ctx context.Context) (map[int]domain.TextInjectMode, error)
}
