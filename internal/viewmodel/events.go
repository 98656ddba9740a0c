package viewmodel

import "sync"

const (
	eventBufferSize  = 32
	eventBacklogSize = 32
)

// Events is a one-shot event stream. Every event goes to the current
// subscribers; events published while nobody listens are kept (up to a
// small backlog) and handed to the next Drain or Subscribe.
type Events[E any] struct {
	mu      sync.Mutex
	subs    map[int]chan E
	nextID  int
	backlog []E
	closed  bool
}

// NewEvents creates an empty stream.
func NewEvents[E any]() *Events[E] {
	return &Events[E]{subs: make(map[int]chan E)}
}

// Publish delivers e. Subscribers whose buffer is full miss it.
func (ev *Events[E]) Publish(e E) {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	if ev.closed {
		return
	}
	if len(ev.subs) == 0 {
		if len(ev.backlog) == eventBacklogSize {
			ev.backlog = ev.backlog[1:]
		}
		ev.backlog = append(ev.backlog, e)
		return
	}
	for _, ch := range ev.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Drain returns and forgets the backlog.
func (ev *Events[E]) Drain() []E {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	out := ev.backlog
	ev.backlog = nil
	return out
}

// Subscribe returns a channel of events, starting with the backlog.
func (ev *Events[E]) Subscribe() (<-chan E, func()) {
	ev.mu.Lock()
	defer ev.mu.Unlock()

	ch := make(chan E, eventBufferSize)
	if ev.closed {
		close(ch)
		return ch, func() {}
	}
	for _, e := range ev.backlog {
		ch <- e
	}
	ev.backlog = nil
	id := ev.nextID
	ev.nextID++
	ev.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			ev.mu.Lock()
			defer ev.mu.Unlock()
			if c, ok := ev.subs[id]; ok {
				delete(ev.subs, id)
				close(c)
			}
		})
	}
}

// Close drops the backlog and closes every subscriber channel.
func (ev *Events[E]) Close() {
	ev.mu.Lock()
	defer ev.mu.Unlock()
	if ev.closed {
		return
	}
	ev.closed = true
	ev.backlog = nil
	for id, ch := range ev.subs {
		delete(ev.subs, id)
		close(ch)
	}
}
