package notification

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"storefront/internal/core/ports"
)

// DefaultQueueCapacity bounds memory when the dispatcher falls behind.
const DefaultQueueCapacity = 10000

var ErrQueueFull = errors.New("notification queue is full")

// Envelope is a queued event and the number of failed dispatch attempts so far.
type Envelope struct {
	Event    ports.StatusEntered
	Attempts int
}

// Queue is a bounded FIFO of events. It implements ports.StatusEventPublisher and is
// safe for concurrent use.
type Queue struct {
	mu       sync.Mutex
	pending  []Envelope
	capacity int
}

// NewQueue uses DefaultQueueCapacity when capacity is not positive.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultQueueCapacity
	}
	return &Queue{capacity: capacity}
}

// Publish enqueues events in order. Events that do not fit are dropped and reported
// with ErrQueueFull; the ones before them stay queued.
func (q *Queue) Publish(_ context.Context, events ...ports.StatusEntered) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, e := range events {
		if len(q.pending) >= q.capacity {
			return fmt.Errorf("%w: dropped %d of %d events", ErrQueueFull, len(events)-i, len(events))
		}
		q.pending = append(q.pending, Envelope{Event: e})
	}
	return nil
}

// Drain removes and returns up to limit envelopes, oldest first. A non-positive
// limit drains everything.
func (q *Queue) Drain(limit int) []Envelope {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.pending)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]Envelope, n)
	copy(out, q.pending[:n])
	q.pending = q.pending[n:]
	return out
}

// Requeue puts envelopes back at the tail, keeping their attempt counts.
func (q *Queue) Requeue(envs ...Envelope) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, env := range envs {
		if len(q.pending) >= q.capacity {
			return fmt.Errorf("%w: dropped %d retried events", ErrQueueFull, len(envs)-i)
		}
		q.pending = append(q.pending, env)
	}
	return nil
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}
