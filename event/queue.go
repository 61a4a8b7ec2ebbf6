package event

import (
	"sync/atomic"

	"github.com/mkotake/sushi-survivor/parameter"
)

// Queue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Consume: Single consumer (game loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
}

func NewQueue() *Queue {
	q := &Queue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push adds an event using lock-free CAS with published flags pattern
// Safe for concurrent producers. O(1) amortized
func (q *Queue) Push(event GameEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = event
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Emit is shorthand for pushing a typed event with a payload
func (q *Queue) Emit(t EventType, payload any) {
	q.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and advances head
// Single-consumer design (game loop). Checks published flags for safety
func (q *Queue) Consume() []GameEvent {
	currentHead := q.head.Load()
	currentTail := q.tail.Load()

	if currentTail == currentHead {
		return nil
	}

	maxAvailable := currentTail - currentHead
	if maxAvailable > parameter.EventQueueSize {
		maxAvailable = parameter.EventQueueSize
		currentHead = currentTail - parameter.EventQueueSize
	}

	result := make([]GameEvent, 0, maxAvailable)
	for i := uint64(0); i < maxAvailable; i++ {
		idx := (currentHead + i) & parameter.EventBufferMask

		if !q.published[idx].Load() {
			break // Writer incomplete
		}

		result = append(result, q.events[idx])
		q.published[idx].Store(false)
	}
	if len(result) == 0 {
		return nil
	}

	// The extracted slots are already unpublished, so a lost race
	// against Push's overflow head-advance must not retry and drop
	// them. Head only ever moves forward.
	newHead := currentHead + uint64(len(result))
	for {
		h := q.head.Load()
		if h >= newHead || q.head.CompareAndSwap(h, newHead) {
			break
		}
	}
	return result
}

// Len returns approximate pending event count
// Lock-free; used for pre-lock heuristics
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.EventQueueSize {
		return parameter.EventQueueSize
	}
	return diff
}
