// Package cache provides decorators for ports.MatchInfoProvider.
//
// Decorators follow the same shape as HTTP middleware:
//
//	provider := cache.Chain(redisStore,
//		cache.NewMemoMiddleware(time.Minute),
//		cache.NewDefaultModeMiddleware(domain.TextInjectModeClipboard),
//	)
package cache
