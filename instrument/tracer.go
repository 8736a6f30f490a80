package instrument

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/lazypath/search"
)

// TracerName is the instrumentation scope used when no tracer is supplied.
const TracerName = "github.com/katalvlaran/lazypath"

// Tracer turns each finished search into one OpenTelemetry span.
//
// Each span has:
//   - Name: "lazypath.search/<mode>"
//   - Timestamps: Report.Started and Report.Started + Report.Elapsed
//   - Attributes: lazypath.mode, lazypath.outcome and the Report counters
//   - Status: Error with the search error for aborted searches, Ok otherwise
type Tracer struct {
	tracer trace.Tracer
	parent trace.SpanContext // zero value: spans are roots
}

// NewTracer wraps tracer. A nil tracer uses otel.Tracer(TracerName) from the
// global provider.
func NewTracer(tracer trace.Tracer) *Tracer {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	return &Tracer{tracer: tracer}
}

// ForContext returns a Tracer whose spans are children of the span in ctx.
// Only the span context is kept; ctx itself is not retained.
func (t *Tracer) ForContext(ctx context.Context) *Tracer {
	return &Tracer{tracer: t.tracer, parent: trace.SpanContextFromContext(ctx)}
}

// ObserveSearch implements search.Observer.
func (t *Tracer) ObserveSearch(r search.Report) {
	ctx := context.Background()
	if t.parent.IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, t.parent)
	}
	_, span := t.tracer.Start(ctx, "lazypath.search/"+r.Mode.String(),
		trace.WithTimestamp(r.Started),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	span.SetAttributes(
		attribute.String("lazypath.mode", r.Mode.String()),
		attribute.String("lazypath.outcome", r.Outcome.String()),
		attribute.Int("lazypath.expanded", r.Expanded),
		attribute.Int("lazypath.pushed", r.Pushed),
		attribute.Int("lazypath.discarded", r.Discarded),
		attribute.Int("lazypath.frontier_peak", r.PeakFrontier),
	)
	if r.Err != nil {
		span.RecordError(r.Err)
		span.SetStatus(codes.Error, r.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End(trace.WithTimestamp(r.Started.Add(r.Elapsed)))
}
