package resultsink

import "github.com/ouijasearch/ouija/pkg/evaluate"

// Queue is the search driver's multi-producer single-consumer result
// channel: one per search run, shared read-only by reference across every
// worker goroutine, drained by a single collector.
type Queue struct {
	ch chan evaluate.Result
}

// NewQueue allocates a Queue buffered to capacity results. Capacity should
// be large enough that workers rarely block on a full buffer, but the
// queue still applies backpressure rather than growing unbounded.
func NewQueue(capacity int) *Queue {
	return &Queue{ch: make(chan evaluate.Result, capacity)}
}

// Enqueue publishes res. It first tries a non-blocking send; if the queue
// is full, it polls cancelled and drops res when cancellation is set, so a
// worker winding down after cancellation never blocks forever behind a
// consumer that has already stopped draining. Otherwise it blocks until
// the queue has room.
func (q *Queue) Enqueue(res evaluate.Result, cancelled func() bool) {
	select {
	case q.ch <- res:
		return
	default:
	}
	if cancelled() {
		return
	}
	q.ch <- res
}

// Results returns the receive side of the queue for the single collector
// goroutine to range over.
func (q *Queue) Results() <-chan evaluate.Result {
	return q.ch
}

// Close signals that no further results will be enqueued. Call it once,
// after every worker goroutine has finished.
func (q *Queue) Close() {
	close(q.ch)
}
