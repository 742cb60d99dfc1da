package media

import "sync"

// eventQueue delivers events to a handler in order from one goroutine.
// push never blocks, so it is safe to call while holding the player lock.
type eventQueue struct {
	mu      sync.Mutex
	pending []Event
	handler func(Event)

	signal    chan struct{}
	stop      chan struct{}
	closeOnce sync.Once
}

func newEventQueue() *eventQueue {
	q := &eventQueue{
		signal: make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *eventQueue) setHandler(handler func(Event)) {
	q.mu.Lock()
	q.handler = handler
	q.mu.Unlock()
}

func (q *eventQueue) push(ev Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()

	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *eventQueue) run() {
	for {
		select {
		case <-q.stop:
			return
		case <-q.signal:
		}

		for {
			q.mu.Lock()
			batch := q.pending
			q.pending = nil
			handler := q.handler
			q.mu.Unlock()

			if len(batch) == 0 {
				break
			}
			if handler == nil {
				continue
			}
			for _, ev := range batch {
				handler(ev)
			}
		}
	}
}

func (q *eventQueue) close() {
	q.closeOnce.Do(func() { close(q.stop) })
}
