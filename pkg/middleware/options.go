package middleware

import (
	"log/slog"

	"github.com/aretw0/typist/pkg/observability"
)

// Option defines a functional option for configuring the Action middleware.
type Option func(*Action)

// WithLogger configures the structured logger used to report anomalies.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Action) {
		a.logger = logger
	}
}

// WithMetrics configures the Prometheus recorders.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(a *Action) {
		a.metrics = metrics
	}
}

// WithCharUnit sets the unit used to count trigger and separator characters.
func WithCharUnit(unit CharUnit) Option {
	return func(a *Action) {
		a.count = unit.Counter()
	}
}

// WithCounter sets a custom character counter. Nil is ignored.
func WithCounter(count CountFunc) Option {
	return func(a *Action) {
		if count != nil {
			a.count = count
		}
	}
}

// WithMaxKeyCount bounds the number of keys in a generated key sequence.
// Non-positive values are ignored.
func WithMaxKeyCount(n int) Option {
	return func(a *Action) {
		if n > 0 {
			a.maxKeys = n
		}
	}
}
