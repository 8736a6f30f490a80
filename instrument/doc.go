// Package instrument provides search.Observer implementations that export
// finished searches to Prometheus, OpenTelemetry and log/slog.
//
// The search package itself never logs, traces or counts anything. Callers
// opt in per search:
//
//	reg := prometheus.NewRegistry()
//	obs := instrument.Fanout(
//	    instrument.NewMetrics(reg),
//	    instrument.NewTracer(otel.Tracer("lazypath")),
//	    instrument.NewLogger(slog.Default()),
//	)
//	path, found, err := search.AStar(p, search.WithObserver(obs))
//
// Every observer here is safe for concurrent use.
package instrument
