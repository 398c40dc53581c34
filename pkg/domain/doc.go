/*
Package domain contains the pipeline message model shared by every typist stage.

It defines the events exchanged between the stages of a text-expansion
engine and the injection commands handed to the input-simulation backend.
This package is kept pure and free of I/O, following Hexagonal Architecture
principles.

# Key Entities

  - Event: Envelope carrying a SourceID, an EventType and a typed payload.
  - RenderedEvent, CursorHintCompensationEvent, TriggerCompensationEvent:
    intent-level events produced after a match has been rendered.
  - TextInjectRequest, KeySequenceInjectRequest: concrete commands for the
    injection backend.
  - Key, TextInjectMode: symbolic keys and text injection strategies.

Events of types not declared here are opaque: stages forward them untouched.
*/
package domain
