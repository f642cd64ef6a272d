package event

import "sync/atomic"

// QueueSize is the capacity of an event queue, must be a power of two
const QueueSize = 256

const queueMask = QueueSize - 1

// Queue is a lock-free MPSC ring buffer carrying raw events from pollers to the loop
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Pop: Single consumer (compositor loop)
//   - Published flags prevent reading partial writes
//
// Overflow: newest events are dropped when full and counted
type Queue struct {
	events    [QueueSize]Raw
	published [QueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
	dropped   atomic.Uint64
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds an event, returns false if the queue is full
// Safe for concurrent producers
func (q *Queue) Push(ev Raw) bool {
	for {
		currentTail := q.tail.Load()
		if currentTail-q.head.Load() >= QueueSize {
			q.dropped.Add(1)
			return false
		}

		if q.tail.CompareAndSwap(currentTail, currentTail+1) {
			idx := currentTail & queueMask
			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write
			return true
		}
	}
}

// Pop removes the oldest published event without blocking
// Single-consumer only
func (q *Queue) Pop() (Raw, bool) {
	head := q.head.Load()
	if head == q.tail.Load() {
		return Raw{}, false
	}

	idx := head & queueMask
	if !q.published[idx].Load() {
		return Raw{}, false // Writer incomplete, picked up next drain
	}

	ev := q.events[idx]
	q.published[idx].Store(false)
	q.head.Store(head + 1)
	return ev, true
}

// Len returns the number of reserved slots, including ones still being written
func (q *Queue) Len() int {
	return int(q.tail.Load() - q.head.Load())
}

// Dropped returns how many events were rejected because the queue was full
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
