package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// wireEvent is the JSON envelope of an Event.
type wireEvent struct {
	SourceID SourceID        `json:"source_id,omitempty"`
	Type     EventType       `json:"type"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// MarshalJSON encodes the event as {"source_id", "type", "payload"}.
// Text is never HTML-escaped: "<", ">" and "&" reach the injection backend
// as typed, provided the outer encoder has SetEscapeHTML(false).
func (e Event) MarshalJSON() ([]byte, error) {
	var raw json.RawMessage
	switch p := e.Payload.(type) {
	case nil:
	case json.RawMessage:
		raw = p
	default:
		data, err := encode(p)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s payload: %w", e.Type, err)
		}
		raw = data
	}
	return encode(wireEvent{SourceID: e.SourceID, Type: e.Type, Payload: raw})
}

// UnmarshalJSON decodes the envelope and the payload of known event types.
// Payloads of unknown types are kept as json.RawMessage so they can be
// forwarded with their content unchanged (whitespace may be compacted).
func (e *Event) UnmarshalJSON(data []byte) error {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}
	if w.Type == "" {
		return fmt.Errorf("%w: missing type", ErrMalformedEvent)
	}

	payload, err := decodePayload(w.Type, w.Payload)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedEvent, w.Type, err)
	}

	*e = Event{SourceID: w.SourceID, Type: w.Type, Payload: payload}
	return nil
}

func decodePayload(t EventType, raw json.RawMessage) (any, error) {
	switch t {
	case EventRendered:
		var p RenderedEvent
		return p, unmarshalOptional(raw, &p)
	case EventCursorHintCompensation:
		var p CursorHintCompensationEvent
		return p, unmarshalOptional(raw, &p)
	case EventTriggerCompensation:
		var p TriggerCompensationEvent
		return p, unmarshalOptional(raw, &p)
	case EventTextInject:
		var p TextInjectRequest
		if err := unmarshalOptional(raw, &p); err != nil {
			return nil, err
		}
		mode, err := ParseTextInjectMode(string(p.ForceMode))
		if err != nil {
			return nil, err
		}
		p.ForceMode = mode
		return p, nil
	case EventKeySequenceInject:
		var p KeySequenceInjectRequest
		if err := unmarshalOptional(raw, &p); err != nil {
			return nil, err
		}
		if p.Keys == nil {
			p.Keys = []Key{}
		}
		return p, nil
	default:
		if len(raw) == 0 {
			return nil, nil
		}
		return raw, nil
	}
}

func unmarshalOptional(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

// encode is json.Marshal without HTML escaping.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
