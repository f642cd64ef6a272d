package event

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	for i := 0; i < 10; i++ {
		require.True(t, q.Push(Raw{Type: KeyDown, Scancode: i}))
	}
	assert.Equal(t, 10, q.Len())

	for i := 0; i < 10; i++ {
		ev, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, ev.Scancode)
	}
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize; i++ {
		require.True(t, q.Push(Raw{Scancode: i}))
	}
	assert.False(t, q.Push(Raw{Scancode: -1}))
	assert.Equal(t, uint64(1), q.Dropped())

	ev, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, 0, ev.Scancode, "oldest events survive overflow")
	assert.True(t, q.Push(Raw{Scancode: QueueSize}))
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewQueue()
	const producers = 4
	const perProducer = 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(Raw{Type: KeyDown, X: p, Scancode: i})
			}
		}(p)
	}
	wg.Wait()

	last := make(map[int]int)
	for p := 0; p < producers; p++ {
		last[p] = -1
	}
	count := 0
	for {
		ev, ok := q.Pop()
		if !ok {
			break
		}
		assert.Greater(t, ev.Scancode, last[ev.X], "per-producer order preserved")
		last[ev.X] = ev.Scancode
		count++
	}
	assert.Equal(t, producers*perProducer, count)
}
