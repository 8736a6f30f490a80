package instrument_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/lazypath/instrument"
	"github.com/katalvlaran/lazypath/search"
)

// newProvider returns a tracer provider that records spans synchronously.
func newProvider(t *testing.T) (*sdktrace.TracerProvider, *tracetest.InMemoryExporter) {
	t.Helper()
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	return tp, exporter
}

// attrs flattens span attributes into a map.
func attrs(kvs []attribute.KeyValue) map[attribute.Key]attribute.Value {
	out := make(map[attribute.Key]attribute.Value, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}

	return out
}

func TestTracer_Span(t *testing.T) {
	tp, exporter := newProvider(t)
	tr := instrument.NewTracer(tp.Tracer("test"))

	started := time.Date(2024, 12, 16, 6, 0, 0, 0, time.UTC)
	tr.ObserveSearch(search.Report{
		Mode: search.ModeBag, Outcome: search.OutcomeFound,
		Expanded: 3, Pushed: 6, Discarded: 1, PeakFrontier: 4,
		Started: started, Elapsed: 2 * time.Second,
	})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Equal(t, "lazypath.search/bag", span.Name)
	assert.True(t, span.StartTime.Equal(started))
	assert.True(t, span.EndTime.Equal(started.Add(2*time.Second)))
	assert.Equal(t, codes.Ok, span.Status.Code)

	a := attrs(span.Attributes)
	assert.Equal(t, "bag", a["lazypath.mode"].AsString())
	assert.Equal(t, "found", a["lazypath.outcome"].AsString())
	assert.Equal(t, int64(3), a["lazypath.expanded"].AsInt64())
	assert.Equal(t, int64(6), a["lazypath.pushed"].AsInt64())
	assert.Equal(t, int64(4), a["lazypath.frontier_peak"].AsInt64())
}

func TestTracer_AbortedSearch(t *testing.T) {
	tp, exporter := newProvider(t)
	tr := instrument.NewTracer(tp.Tracer("test"))

	err := fmt.Errorf("%w: 10 expansions", search.ErrExpansionLimit)
	tr.ObserveSearch(search.Report{Mode: search.ModeAStar, Outcome: search.OutcomeAborted, Err: err, Started: time.Now()})

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Contains(t, spans[0].Status.Description, "expansion limit")
	require.NotEmpty(t, spans[0].Events)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}

func TestTracer_ForContext(t *testing.T) {
	tp, exporter := newProvider(t)
	ctx, parent := tp.Tracer("test").Start(context.Background(), "solve")

	instrument.NewTracer(tp.Tracer("test")).ForContext(ctx).ObserveSearch(search.Report{
		Mode: search.ModeDijkstraAll, Outcome: search.OutcomeExhausted, Started: time.Now(),
	})
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	child := spans[0]
	assert.Equal(t, "lazypath.search/dijkstra_all", child.Name)
	assert.Equal(t, parent.SpanContext().SpanID(), child.Parent.SpanID())
	assert.Equal(t, parent.SpanContext().TraceID(), child.SpanContext.TraceID())
}

func TestTracer_ForContextOutlivesCancel(t *testing.T) {
	tp, exporter := newProvider(t)
	ctx, parent := tp.Tracer("test").Start(context.Background(), "solve")
	ctx, cancel := context.WithCancel(ctx)
	tr := instrument.NewTracer(tp.Tracer("test")).ForContext(ctx)
	cancel()
	parent.End()

	tr.ObserveSearch(search.Report{Mode: search.ModeAStar, Outcome: search.OutcomeFound, Started: time.Now()})

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	child := spans[1]
	assert.Equal(t, "lazypath.search/astar", child.Name)
	assert.Equal(t, parent.SpanContext().SpanID(), child.Parent.SpanID())
}

func TestTracer_RootWithoutContext(t *testing.T) {
	tp, exporter := newProvider(t)
	tr := instrument.NewTracer(tp.Tracer("test"))
	tr.ObserveSearch(search.Report{Mode: search.ModeCount, Outcome: search.OutcomeFound, Started: time.Now()})
	tr.ForContext(context.Background()).ObserveSearch(search.Report{Mode: search.ModeCount, Outcome: search.OutcomeFound, Started: time.Now()})

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	for _, span := range spans {
		assert.False(t, span.Parent.IsValid())
	}
	assert.NotEqual(t, spans[0].SpanContext.TraceID(), spans[1].SpanContext.TraceID())
}
