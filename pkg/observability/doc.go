/*
Package observability provides ready-made lifecycle hooks for monitoring
state machine runs.

LoggingHooks emits a structured slog line per lifecycle event, and
Metrics exposes Prometheus counters and histograms for transitions,
assertion failures and run durations. Merge combines several hook sets so
logging and metrics can be attached together.
*/
package observability
