package domain

import (
	"fmt"
	"strings"
)

// Key represents a symbolic key the injection backend can press.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Modifiers
	KeyAlt
	KeyCapsLock
	KeyControl
	KeyMeta
	KeyNumLock
	KeyShift

	// Whitespace
	KeyEnter
	KeyTab
	KeySpace

	// Navigation
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyEnd
	KeyHome
	KeyPageDown
	KeyPageUp

	// Editing
	KeyEscape
	KeyBackspace
	KeyInsert
	KeyDelete

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyNames = [...]string{
	KeyNone:       "None",
	KeyAlt:        "Alt",
	KeyCapsLock:   "CapsLock",
	KeyControl:    "Control",
	KeyMeta:       "Meta",
	KeyNumLock:    "NumLock",
	KeyShift:      "Shift",
	KeyEnter:      "Enter",
	KeyTab:        "Tab",
	KeySpace:      "Space",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyArrowUp:    "ArrowUp",
	KeyEnd:        "End",
	KeyHome:       "Home",
	KeyPageDown:   "PageDown",
	KeyPageUp:     "PageUp",
	KeyEscape:     "Escape",
	KeyBackspace:  "Backspace",
	KeyInsert:     "Insert",
	KeyDelete:     "Delete",
	KeyF1:         "F1",
	KeyF2:         "F2",
	KeyF3:         "F3",
	KeyF4:         "F4",
	KeyF5:         "F5",
	KeyF6:         "F6",
	KeyF7:         "F7",
	KeyF8:         "F8",
	KeyF9:         "F9",
	KeyF10:        "F10",
	KeyF11:        "F11",
	KeyF12:        "F12",
}

// keyAliases maps lowercase names and common abbreviations to keys.
var keyAliases = func() map[string]Key {
	m := make(map[string]Key, len(keyNames)+8)
	for k, name := range keyNames {
		m[strings.ToLower(name)] = Key(k)
	}
	m["ctrl"] = KeyControl
	m["esc"] = KeyEscape
	m["bs"] = KeyBackspace
	m["del"] = KeyDelete
	m["return"] = KeyEnter
	m["left"] = KeyArrowLeft
	m["right"] = KeyArrowRight
	m["up"] = KeyArrowUp
	m["down"] = KeyArrowDown
	return m
}()

// String returns the canonical name of the key.
func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", k)
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyArrowDown && k <= KeyArrowUp
}

// IsModifier returns true if this is a modifier key.
func (k Key) IsModifier() bool {
	return k >= KeyAlt && k <= KeyShift
}

// ParseKey resolves a key name (case-insensitive, aliases allowed).
func ParseKey(name string) (Key, error) {
	if k, ok := keyAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

// MarshalText encodes the key by name.
func (k Key) MarshalText() ([]byte, error) {
	if int(k) >= len(keyNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKey, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a key name.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Keys returns every named key except KeyNone, in declaration order.
func Keys() []Key {
	keys := make([]Key, 0, len(keyNames)-1)
	for k := KeyNone + 1; int(k) < len(keyNames); k++ {
		keys = append(keys, k)
	}
	return keys
}
