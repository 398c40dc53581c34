/*
Package observability provides Prometheus instrumentation for the typist pipeline.

It counts translated events per kind, contract anomalies clamped during
translation (e.g. a left separator longer than its trigger), match-info
lookups and dispatched events dropped by the queue limit.
*/
package observability
