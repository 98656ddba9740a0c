// Package viewmodel holds the screen-state plumbing shared by every screen:
// a snapshot store with subscribers, a one-shot event stream, the
// cancellable scope intents run in, and the registry of open sessions.
package viewmodel

import "sync"

// Snapshot is one published UI state. Version increases by one on every
// update.
type Snapshot[S any] struct {
	Version uint64 `json:"version"`
	State   S      `json:"state"`
}

// Store holds the current snapshot of a screen. State values are treated
// as immutable: Update callers must return a new value and never mutate
// slices or maps reachable from the old one.
type Store[S any] struct {
	mu     sync.Mutex
	cur    Snapshot[S]
	subs   map[int]chan Snapshot[S]
	nextID int
	closed bool
}

// NewStore creates a store holding initial at version 1.
func NewStore[S any](initial S) *Store[S] {
	return &Store[S]{
		cur:  Snapshot[S]{Version: 1, State: initial},
		subs: make(map[int]chan Snapshot[S]),
	}
}

// Current returns the latest snapshot.
func (s *Store[S]) Current() Snapshot[S] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

// Update replaces the state with fn(old) and publishes it. After Close it
// is a no-op and reports false.
func (s *Store[S]) Update(fn func(S) S) (Snapshot[S], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.cur, false
	}
	s.cur = Snapshot[S]{Version: s.cur.Version + 1, State: fn(s.cur.State)}
	for _, ch := range s.subs {
		offerLatest(ch, s.cur)
	}
	return s.cur, true
}

// Subscribe returns a channel that immediately holds the current snapshot
// and then every later one. A slow reader only ever sees the newest
// snapshot. The channel is closed by cancel or by Close.
func (s *Store[S]) Subscribe() (<-chan Snapshot[S], func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot[S], 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	ch <- s.cur
	id := s.nextID
	s.nextID++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(c)
			}
		})
	}
}

// Close stops publishing and closes every subscriber channel.
func (s *Store[S]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subs {
		delete(s.subs, id)
		close(ch)
	}
}

// offerLatest puts v into a one-slot channel, dropping the unread value.
// Callers hold the store lock, so no other sender races for the slot.
func offerLatest[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}
