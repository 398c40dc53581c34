package domain

import "errors"

// ErrMatchNotFound is returned by match-info stores when an id has no entry.
var ErrMatchNotFound = errors.New("match not found")

// ErrUnknownKey is returned when a key name or value cannot be resolved.
var ErrUnknownKey = errors.New("unknown key")

// ErrUnknownInjectMode is returned when a text injection mode cannot be resolved.
var ErrUnknownInjectMode = errors.New("unknown text inject mode")

// ErrSeparatorOverflow is reported when a trigger's left separator is longer than the trigger itself.
var ErrSeparatorOverflow = errors.New("left separator longer than trigger")

// ErrMalformedEvent is returned when an event payload does not match its type.
var ErrMalformedEvent = errors.New("malformed event")

// ErrDispatchOverflow is reported when a pipeline run exceeds its event budget.
var ErrDispatchOverflow = errors.New("dispatch queue overflow")
