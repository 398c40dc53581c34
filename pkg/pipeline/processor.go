package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/observability"
	"github.com/aretw0/typist/pkg/ports"
)

// DefaultMaxEvents bounds the number of events a single Process call may produce.
const DefaultMaxEvents = 1024

// Processor runs events through an ordered chain of middlewares.
// Events dispatched by a middleware are queued and run through the whole
// chain after the current event, in dispatch order.
type Processor struct {
	middlewares []ports.Middleware
	logger      *slog.Logger
	metrics     *observability.Metrics
	maxEvents   int
}

// New creates a processor running middlewares in the given order.
func New(middlewares []ports.Middleware, opts ...Option) *Processor {
	p := &Processor{
		middlewares: middlewares,
		maxEvents:   DefaultMaxEvents,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if p.maxEvents <= 0 {
		p.maxEvents = DefaultMaxEvents
	}
	return p
}

// Names returns the names of the middlewares, in execution order.
func (p *Processor) Names() []string {
	names := make([]string, len(p.middlewares))
	for i, m := range p.middlewares {
		names[i] = m.Name()
	}
	return names
}

// Process runs event, and every event dispatched while handling it, through
// the chain. It returns the final form of each event in processing order.
func (p *Processor) Process(event domain.Event) []domain.Event {
	q := &queue{events: []domain.Event{event}}
	processed := make([]domain.Event, 0, 1)

	for len(q.events) > 0 {
		if len(processed) >= p.maxEvents {
			dropped := len(q.events)
			p.logger.Warn("event budget exhausted, dropping dispatched events",
				"limit", p.maxEvents,
				"dropped", dropped,
				"error", fmt.Errorf("%w: %d events pending", domain.ErrDispatchOverflow, dropped),
			)
			p.metrics.ObserveDropped(dropped)
			break
		}

		current := q.pop()
		for _, m := range p.middlewares {
			in := current.Type
			current = m.Next(current, q)
			p.logger.Debug("middleware processed event",
				"middleware", m.Name(),
				"source_id", current.SourceID,
				"in", in,
				"out", current.Type,
			)
		}
		processed = append(processed, current)
	}

	return processed
}

// queue is the Dispatcher handed to middlewares during a Process call.
type queue struct {
	events []domain.Event
}

func (q *queue) Dispatch(event domain.Event) {
	q.events = append(q.events, event)
}

func (q *queue) pop() domain.Event {
	ev := q.events[0]
	q.events = q.events[1:]
	return ev
}
