package instrument_test

import (
	"bytes"
	"iter"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazypath/instrument"
	"github.com/katalvlaran/lazypath/search"
)

func TestFanout(t *testing.T) {
	assert.Nil(t, instrument.Fanout())
	assert.Nil(t, instrument.Fanout(nil, nil))

	var a, b int
	one := search.ObserverFunc(func(search.Report) { a++ })
	two := search.ObserverFunc(func(search.Report) { b++ })

	// A single observer is returned unwrapped.
	single := instrument.Fanout(nil, one)
	single.ObserveSearch(search.Report{})
	assert.Equal(t, 1, a)

	instrument.Fanout(one, nil, two).ObserveSearch(search.Report{})
	assert.Equal(t, 2, a)
	assert.Equal(t, 1, b)
}

// TestObserversOnRealSearch wires every observer into one search run.
func TestObserversOnRealSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	tp, exporter := newProvider(t)
	var buf bytes.Buffer

	obs := instrument.Fanout(
		instrument.NewMetrics(reg),
		instrument.NewTracer(tp.Tracer("test")),
		instrument.NewLogger(jsonLogger(&buf, slog.LevelDebug)),
	)

	adj := map[int][]search.Edge[int, int]{
		0: {{To: 1, Cost: 1}, {To: 2, Cost: 1}},
		1: {{To: 3, Cost: 1}},
		2: {{To: 3, Cost: 1}},
	}
	p := search.Problem[int, int, int]{
		Start:      0,
		Successors: func(n int) iter.Seq2[int, int] { return search.Edges(adj[n]...) },
		Success:    func(n int) bool { return n == 3 },
		Key:        search.Identity[int](),
	}

	n, err := search.CountPaths(p, search.WithObserver(obs))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	_, _, err = search.AStar(p, search.WithObserver(obs))
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "lazypath_searches_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Len(t, exporter.GetSpans(), 2)
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
}
