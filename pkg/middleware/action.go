package middleware

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/aretw0/typist/pkg/observability"
	"github.com/aretw0/typist/pkg/ports"
)

// ActionName is the name the Action middleware registers under.
const ActionName = "action"

// DefaultMaxKeyCount bounds the length of a generated key sequence.
// Longer sequences are clamped and reported as anomalies.
const DefaultMaxKeyCount = 4096

// Action translates intent-level events into injection commands:
//
//   - rendered                 -> text_inject (force mode from the MatchInfoProvider)
//   - cursor_hint_compensation -> key_sequence_inject of ArrowLeft presses
//   - trigger_compensation     -> key_sequence_inject of Backspace presses
//
// Every other event is returned unchanged. Action holds no per-call state
// and never uses the dispatch side channel.
type Action struct {
	provider ports.MatchInfoProvider
	count    CountFunc
	maxKeys  int
	logger   *slog.Logger
	metrics  *observability.Metrics
}

var _ ports.Middleware = (*Action)(nil)

// NewAction creates the action middleware.
// A nil provider behaves as one that never forces a mode.
func NewAction(provider ports.MatchInfoProvider, opts ...Option) *Action {
	a := &Action{
		provider: provider,
		count:    CountCodePoints,
		maxKeys:  DefaultMaxKeyCount,
	}
	for _, opt := range opts {
		opt(a)
	}

	if a.provider == nil {
		a.provider = ports.MatchInfoProviderFunc(func(int) (domain.TextInjectMode, bool) {
			return domain.TextInjectModeDefault, false
		})
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a
}

// Name implements ports.Middleware.
func (a *Action) Name() string { return ActionName }

// Next implements ports.Middleware.
func (a *Action) Next(event domain.Event, _ ports.Dispatcher) domain.Event {
	switch event.Type {
	case domain.EventRendered:
		p, ok := event.Payload.(domain.RenderedEvent)
		if !ok {
			return a.passMalformed(event)
		}
		return a.rendered(event.SourceID, p)

	case domain.EventCursorHintCompensation:
		p, ok := event.Payload.(domain.CursorHintCompensationEvent)
		if !ok {
			return a.passMalformed(event)
		}
		return a.cursorHint(event.SourceID, p)

	case domain.EventTriggerCompensation:
		p, ok := event.Payload.(domain.TriggerCompensationEvent)
		if !ok {
			return a.passMalformed(event)
		}
		return a.triggerCompensation(event.SourceID, p)

	default:
		// TODO: translate image rendering events once the injection backend can paste images.
		return event
	}
}

func (a *Action) rendered(source domain.SourceID, p domain.RenderedEvent) domain.Event {
	mode, ok := a.provider.ForceMode(p.MatchID)
	a.metrics.ObserveLookup(ok)
	if !ok {
		mode = domain.TextInjectModeDefault
	}

	a.metrics.ObserveTranslation(string(domain.EventRendered))
	return domain.NewTextInject(source, p.Body, mode)
}

func (a *Action) cursorHint(source domain.SourceID, p domain.CursorHintCompensationEvent) domain.Event {
	n := p.CursorHintBackCount
	if n < 0 {
		a.logger.Warn("negative cursor hint count, clamping to zero",
			"source_id", source,
			"count", n,
		)
		a.metrics.ObserveAnomaly(string(domain.EventCursorHintCompensation))
		n = 0
	}
	n = a.limit(source, domain.EventCursorHintCompensation, n)

	a.metrics.ObserveTranslation(string(domain.EventCursorHintCompensation))
	return domain.NewKeySequenceInject(source, domain.KeyArrowLeft, n)
}

func (a *Action) triggerCompensation(source domain.SourceID, p domain.TriggerCompensationEvent) domain.Event {
	// The left separator stays on screen: only the trigger text itself is erased.
	n, err := BackspaceCount(p.Trigger, p.LeftSeparator, a.count)
	if err != nil {
		a.logger.Warn("inconsistent trigger compensation, clamping backspace count to zero",
			"source_id", source,
			"error", err,
		)
		a.metrics.ObserveAnomaly(string(domain.EventTriggerCompensation))
	}
	n = a.limit(source, domain.EventTriggerCompensation, n)

	a.metrics.ObserveTranslation(string(domain.EventTriggerCompensation))
	return domain.NewKeySequenceInject(source, domain.KeyBackspace, n)
}

// limit clamps n to the configured maximum key sequence length.
func (a *Action) limit(source domain.SourceID, kind domain.EventType, n int) int {
	if n <= a.maxKeys {
		return n
	}
	a.logger.Warn("key sequence too long, clamping",
		"source_id", source,
		"type", kind,
		"count", n,
		"max", a.maxKeys,
	)
	a.metrics.ObserveAnomaly(string(kind))
	return a.maxKeys
}

func (a *Action) passMalformed(event domain.Event) domain.Event {
	a.logger.Warn("passing through event with unexpected payload",
		"source_id", event.SourceID,
		"type", event.Type,
		"error", fmt.Errorf("%w: payload %T", domain.ErrMalformedEvent, event.Payload),
	)
	return event
}
