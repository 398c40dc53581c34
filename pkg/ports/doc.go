/*
Package ports defines the driven ports (interfaces) of the typist pipeline.

These interfaces decouple the translation stages from external
implementations, allowing the pipeline to work with various match-info
backends and to be composed with stages owned by other packages.

# Key Interfaces

  - MatchInfoProvider: Read-only per-match lookups (e.g. forced text injection mode).
  - MatchInfoStore: Writable match-info backend (memory, file, Redis).
  - Middleware: A pipeline stage transforming one event at a time.
  - Dispatcher: The side channel a Middleware uses to enqueue extra events.
*/
package ports
