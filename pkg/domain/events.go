package domain

// EventType identifies the variant carried by an Event.
type EventType string

const (
	// EventRendered signals that a match produced its final text.
	// Payload: RenderedEvent
	EventRendered EventType = "rendered"

	// EventCursorHintCompensation asks for the cursor to be moved back after injection.
	// Payload: CursorHintCompensationEvent
	EventCursorHintCompensation EventType = "cursor_hint_compensation"

	// EventTriggerCompensation asks for the typed trigger to be erased.
	// Payload: TriggerCompensationEvent
	EventTriggerCompensation EventType = "trigger_compensation"

	// EventTextInject commands the injection backend to type text.
	// Payload: TextInjectRequest
	EventTextInject EventType = "text_inject"

	// EventKeySequenceInject commands the injection backend to press keys in order.
	// Payload: KeySequenceInjectRequest
	EventKeySequenceInject EventType = "key_sequence_inject"
)

// SourceID correlates an event with the event that caused it.
type SourceID uint32

// Event is a single pipeline message.
// Variants not declared in this package are carried opaquely and must be
// forwarded untouched by stages that do not understand them.
type Event struct {
	SourceID SourceID
	Type     EventType
	Payload  any
}

// RenderedEvent carries the expansion body produced for a match.
type RenderedEvent struct {
	MatchID int    `json:"match_id"`
	Body    string `json:"body"`
}

// CursorHintCompensationEvent holds the number of positions the cursor must
// travel back after the body has been injected.
type CursorHintCompensationEvent struct {
	CursorHintBackCount int `json:"cursor_hint_back_count"`
}

// TriggerCompensationEvent describes the trigger text to erase.
// LeftSeparator, when non-nil, is the literal left edge of Trigger that must stay on screen.
type TriggerCompensationEvent struct {
	Trigger       string  `json:"trigger"`
	LeftSeparator *string `json:"left_separator,omitempty"`
}

// CausedBy builds an event that inherits the source of the event it replaces.
func CausedBy(source SourceID, eventType EventType, payload any) Event {
	return Event{SourceID: source, Type: eventType, Payload: payload}
}

// NewRendered is a convenience constructor for rendered events.
func NewRendered(source SourceID, matchID int, body string) Event {
	return CausedBy(source, EventRendered, RenderedEvent{MatchID: matchID, Body: body})
}

// NewCursorHintCompensation is a convenience constructor for cursor hint compensation events.
func NewCursorHintCompensation(source SourceID, backCount int) Event {
	return CausedBy(source, EventCursorHintCompensation, CursorHintCompensationEvent{CursorHintBackCount: backCount})
}

// NewTriggerCompensation is a convenience constructor for trigger compensation events.
// An empty separator means the trigger had no left separator.
func NewTriggerCompensation(source SourceID, trigger, leftSeparator string) Event {
	payload := TriggerCompensationEvent{Trigger: trigger}
	if leftSeparator != "" {
		payload.LeftSeparator = &leftSeparator
	}
	return CausedBy(source, EventTriggerCompensation, payload)
}
