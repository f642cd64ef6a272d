package status

import (
	"bytes"
	"log"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounterCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Counter("frames")
	b := r.Counter("frames")
	assert.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.True(t, r.Has("frames"))
	assert.False(t, r.Has("missing"))
	assert.Equal(t, 1, r.Count())
}

func TestCounterConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				r.Counter("hits").Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(1600), r.Counter("hits").Load())
	assert.Equal(t, 1, r.Count())
}

func TestAllSortedAndStoppable(t *testing.T) {
	r := NewRegistry()
	r.Counter("b").Store(2)
	r.Counter("a").Store(1)
	r.Counter("c").Store(3)

	var keys []string
	for k := range r.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	n := 0
	for range r.All() {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestReport(t *testing.T) {
	r := NewRegistry()
	r.Counter("route.delivered").Store(4)

	var buf bytes.Buffer
	r.Report(log.New(&buf, "", 0))
	assert.Equal(t, "status: route.delivered=4\n", buf.String())
}
