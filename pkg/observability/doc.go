/*
Package observability provides metrics for monitoring exercise evaluations.

A Recorder counts evaluations and rejected inputs per exercise, plus the number
of elements pulled from generated sequences. Each Recorder owns a private
Prometheus registry, so several recorders (e.g. one per test) never collide on
the global default registry. Write dumps the current values in the text
exposition format.
*/
package observability
