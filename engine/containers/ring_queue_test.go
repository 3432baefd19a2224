package containers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRingQueueFIFO(t *testing.T) {
	rq := NewRingQueue[int](3)
	require.True(t, rq.IsEmpty())

	for i := 1; i <= 3; i++ {
		require.NoError(t, rq.Enqueue(i))
	}
	require.True(t, rq.IsFull())
	require.ErrorIs(t, rq.Enqueue(4), ErrQueueFull)

	v, err := rq.Peek()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	for i := 1; i <= 3; i++ {
		v, err := rq.Dequeue()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	_, err = rq.Dequeue()
	require.ErrorIs(t, err, ErrQueueEmpty)
}

func TestRingQueueWrapsAround(t *testing.T) {
	rq := NewRingQueue[string](2)
	require.NoError(t, rq.Enqueue("a"))
	require.NoError(t, rq.Enqueue("b"))
	v, _ := rq.Dequeue()
	require.Equal(t, "a", v)
	require.NoError(t, rq.Enqueue("c"))
	require.Equal(t, 2, rq.Len())

	v, _ = rq.Dequeue()
	require.Equal(t, "b", v)
	v, _ = rq.Dequeue()
	require.Equal(t, "c", v)
	require.True(t, rq.IsEmpty())
}
