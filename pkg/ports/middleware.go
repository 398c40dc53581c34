package ports

import "github.com/aretw0/typist/pkg/domain"

// Dispatcher is the side channel through which a middleware enqueues
// additional events for the rest of the pipeline.
type Dispatcher interface {
	Dispatch(event domain.Event)
}

// DispatchFunc adapts an ordinary function to Dispatcher.
type DispatchFunc func(event domain.Event)

// Dispatch calls f(event).
func (f DispatchFunc) Dispatch(event domain.Event) {
	f(event)
}

// NopDispatcher discards every dispatched event.
var NopDispatcher Dispatcher = DispatchFunc(func(domain.Event) {})

// Middleware is a single pipeline stage.
// Next is called once per event and returns the event handed to the next stage,
// which may be the input itself.
type Middleware interface {
	// Name identifies the stage in logs and diagnostics.
	Name() string

	Next(event domain.Event, dispatch Dispatcher) domain.Event
}
