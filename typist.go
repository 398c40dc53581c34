package typist

import (
	"io"
	"log/slog"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/middleware"
	"github.com/aretw0/typist/pkg/observability"
	"github.com/aretw0/typist/pkg/pipeline"
	"github.com/aretw0/typist/pkg/ports"
)

// Engine is the high-level entry point for the typist library.
// It wires the action-translation middleware into a pipeline processor.
type Engine struct {
	processor *pipeline.Processor
	provider  ports.MatchInfoProvider
	before    []ports.Middleware
	charUnit  middleware.CharUnit
	maxKeys   int
	maxEvents int
	metrics   *observability.Metrics
	logger    *slog.Logger
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithProvider sets the match-info provider consulted for forced injection modes.
func WithProvider(provider ports.MatchInfoProvider) Option {
	return func(e *Engine) {
		e.provider = provider
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(metrics *observability.Metrics) Option {
	return func(e *Engine) {
		e.metrics = metrics
	}
}

// WithCharUnit sets the unit used for trigger compensation arithmetic.
func WithCharUnit(unit middleware.CharUnit) Option {
	return func(e *Engine) {
		e.charUnit = unit
	}
}

// WithMaxKeyCount bounds the length of generated key sequences.
// Zero keeps middleware.DefaultMaxKeyCount.
func WithMaxKeyCount(n int) Option {
	return func(e *Engine) {
		e.maxKeys = n
	}
}

// WithMiddlewares registers stages that run before the action middleware.
func WithMiddlewares(stages ...ports.Middleware) Option {
	return func(e *Engine) {
		e.before = append(e.before, stages...)
	}
}

// WithMaxEvents bounds the number of events a single Process call may produce.
func WithMaxEvents(n int) Option {
	return func(e *Engine) {
		e.maxEvents = n
	}
}

// WithName labels the engine in logs.
func WithName(name string) Option {
	return func(e *Engine) {
		e.Name = name
	}
}

// New initializes a new typist Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{charUnit: middleware.CharUnitCodePoint}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("pipeline", eng.Name)
	}

	action := middleware.NewAction(eng.provider,
		middleware.WithLogger(eng.logger),
		middleware.WithMetrics(eng.metrics),
		middleware.WithCharUnit(eng.charUnit),
		middleware.WithMaxKeyCount(eng.maxKeys),
	)

	stages := make([]ports.Middleware, 0, len(eng.before)+1)
	stages = append(stages, eng.before...)
	stages = append(stages, action)

	eng.processor = pipeline.New(stages,
		pipeline.WithLogger(eng.logger),
		pipeline.WithMetrics(eng.metrics),
		pipeline.WithMaxEvents(eng.maxEvents),
	)
	return eng
}

// Process translates one event, plus anything dispatched while handling it,
// into the events handed to the injection backend.
func (e *Engine) Process(event domain.Event) []domain.Event {
	return e.processor.Process(event)
}

// Stages returns the names of the pipeline stages, in execution order.
func (e *Engine) Stages() []string {
	return e.processor.Names()
}
