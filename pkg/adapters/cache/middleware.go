package cache

import "github.com/aretw0/typist/pkg/ports"

// Middleware allows wrapping a MatchInfoProvider to add behavior.
type Middleware func(ports.MatchInfoProvider) ports.MatchInfoProvider

// Chain wraps provider with the given middlewares.
// The first middleware is the outermost one: it sees lookups first.
func Chain(provider ports.MatchInfoProvider, mws ...Middleware) ports.MatchInfoProvider {
	for i := len(mws) - 1; i >= 0; i-- {
		provider = mws[i](provider)
	}
	return provider
}
