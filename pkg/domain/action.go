package domain

import (
	"fmt"
	"strings"
)

// TextInjectMode selects the strategy the injection backend uses to enter text.
// The zero value means "no override": the backend picks its configured default.
type TextInjectMode string

const (
	TextInjectModeDefault   TextInjectMode = ""
	TextInjectModeKeys      TextInjectMode = "keys"
	TextInjectModeClipboard TextInjectMode = "clipboard"
)

// ParseTextInjectMode converts a configuration or wire value into a TextInjectMode.
// Matching is case-insensitive; an empty string yields TextInjectModeDefault.
func ParseTextInjectMode(s string) (TextInjectMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TextInjectModeDefault, nil
	case "keys", "key", "keystrokes":
		return TextInjectModeKeys, nil
	case "clipboard", "paste":
		return TextInjectModeClipboard, nil
	default:
		return TextInjectModeDefault, fmt.Errorf("%w: %q", ErrUnknownInjectMode, s)
	}
}

// IsOverride reports whether the mode forces a strategy.
func (m TextInjectMode) IsOverride() bool {
	return m != TextInjectModeDefault
}

// TextInjectRequest commands the backend to type Text.
type TextInjectRequest struct {
	Text      string         `json:"text"`
	ForceMode TextInjectMode `json:"force_mode,omitempty"`
}

// KeySequenceInjectRequest commands the backend to press Keys, in order.
type KeySequenceInjectRequest struct {
	Keys []Key `json:"keys"`
}

// NewTextInject is a convenience constructor for text injection commands.
func NewTextInject(source SourceID, text string, mode TextInjectMode) Event {
	return CausedBy(source, EventTextInject, TextInjectRequest{Text: text, ForceMode: mode})
}

// NewKeySequenceInject builds a command pressing key count times.
// A non-positive count yields an empty, non-nil sequence.
func NewKeySequenceInject(source SourceID, key Key, count int) Event {
	if count < 0 {
		count = 0
	}
	keys := make([]Key, count)
	for i := range keys {
		keys[i] = key
	}
	return CausedBy(source, EventKeySequenceInject, KeySequenceInjectRequest{Keys: keys})
}
