/*
Package pipeline sequences typist middlewares.

A Processor feeds one event at a time through an ordered chain of
ports.Middleware stages. Each stage receives the output of the previous one
together with a ports.Dispatcher it may use to enqueue extra events; queued
events run through the full chain once the current event is done.

Processing is synchronous: Process returns only after every queued event
has been handled or the event budget (WithMaxEvents) is exhausted.
*/
package pipeline
