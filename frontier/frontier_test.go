package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lazypath/frontier"
)

// TestQueue_Empty verifies Pop and Peek on an empty queue report ok=false.
func TestQueue_Empty(t *testing.T) {
	q := frontier.New[string, int](0)
	_, _, ok := q.Pop()
	assert.False(t, ok)
	_, _, ok = q.Peek()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())

	// The zero value must also be usable.
	var z frontier.Queue[string, float64]
	_, _, ok = z.Pop()
	assert.False(t, ok)
	z.Push("a", 1.5)
	v, p, ok := z.Pop()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.5, p)
}

// TestQueue_Order pushes shuffled priorities and expects ascending pops.
func TestQueue_Order(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	q := frontier.New[int, int](16)
	want := make([]int, 200)
	for i := range want {
		want[i] = r.Intn(1000)
		q.Push(want[i], want[i])
	}
	sort.Ints(want)

	got := make([]int, 0, len(want))
	for q.Len() > 0 {
		v, p, ok := q.Pop()
		require.True(t, ok)
		require.Equal(t, v, p)
		got = append(got, v)
	}
	assert.Equal(t, want, got)
}

// TestQueue_StableTies checks that equal priorities come out in insertion order.
func TestQueue_StableTies(t *testing.T) {
	q := frontier.New[string, int](0)
	q.Push("b1", 2)
	q.Push("a1", 1)
	q.Push("b2", 2)
	q.Push("a2", 1)
	q.Push("b3", 2)
	q.Push("a3", 1)

	var got []string
	for {
		v, _, ok := q.Pop()
		if !ok {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []string{"a1", "a2", "a3", "b1", "b2", "b3"}, got)
}

// TestQueue_PeekAndReset covers Peek not mutating and Reset emptying the queue.
func TestQueue_PeekAndReset(t *testing.T) {
	q := frontier.New[rune, uint8](4)
	q.Push('x', 9)
	q.Push('y', 3)

	v, p, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 'y', v)
	assert.Equal(t, uint8(3), p)
	assert.Equal(t, 2, q.Len())

	q.Reset()
	assert.Equal(t, 0, q.Len())
	_, _, ok = q.Peek()
	assert.False(t, ok)

	q.Push('z', 1)
	v, _, ok = q.Pop()
	require.True(t, ok)
	assert.Equal(t, 'z', v)
}

// TestQueue_Interleaved mixes pushes and pops, as a search loop does.
func TestQueue_Interleaved(t *testing.T) {
	q := frontier.New[int, int](0)
	q.Push(5, 5)
	q.Push(1, 1)
	v, _, _ := q.Pop()
	assert.Equal(t, 1, v)
	q.Push(3, 3)
	q.Push(0, 0)
	v, _, _ = q.Pop()
	assert.Equal(t, 0, v)
	v, _, _ = q.Pop()
	assert.Equal(t, 3, v)
	v, _, _ = q.Pop()
	assert.Equal(t, 5, v)
	_, _, ok := q.Pop()
	assert.False(t, ok)
}
