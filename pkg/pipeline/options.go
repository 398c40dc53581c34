package pipeline

import (
	"log/slog"

	"github.com/aretw0/typist/pkg/observability"
)

// Option defines a functional option for configuring the Processor.
type Option func(*Processor)

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Processor) {
		p.logger = logger
	}
}

// WithMetrics configures the Prometheus recorders.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(p *Processor) {
		p.metrics = metrics
	}
}

// WithMaxEvents bounds the number of events one Process call may produce.
// Non-positive values select DefaultMaxEvents.
func WithMaxEvents(n int) Option {
	return func(p *Processor) {
		p.maxEvents = n
	}
}
