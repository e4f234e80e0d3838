package focus

import "sync"

// QueueScheduler is the default Scheduler: scheduled functions are held
// until the host pumps Flush at its next render opportunity. This keeps the
// focus call out of the event handler that triggered it, so the host can
// finish re-rendering a shrunk chip list first.
type QueueScheduler struct {
	mu      sync.Mutex
	nextID  int
	pending map[int]func()
	order   []int
}

// NewQueueScheduler creates an empty queue scheduler.
func NewQueueScheduler() *QueueScheduler {
	return &QueueScheduler{pending: make(map[int]func())}
}

// Schedule queues fn for the next Flush and returns its cancel.
func (q *QueueScheduler) Schedule(fn func()) (cancel func()) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.nextID++
	id := q.nextID
	q.pending[id] = fn
	q.order = append(q.order, id)

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		delete(q.pending, id)
	}
}

// Flush runs everything scheduled so far, in order. Functions scheduled
// while flushing wait for the next Flush.
func (q *QueueScheduler) Flush() {
	q.mu.Lock()
	order := q.order
	q.order = nil
	fns := make([]func(), 0, len(order))
	for _, id := range order {
		if fn, ok := q.pending[id]; ok {
			fns = append(fns, fn)
			delete(q.pending, id)
		}
	}
	q.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
