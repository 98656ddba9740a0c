package viewmodel

import (
	"context"
	"sync"
)

// Scope is the lifetime of a view model. Work launched in it gets a
// context that is cancelled by Close.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	wg     sync.WaitGroup
	closed bool
}

// NewScope derives a scope from parent. Values of parent (trace id) are
// kept; its cancellation also ends the scope.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Context returns the scope's context.
func (s *Scope) Context() context.Context { return s.ctx }

// Launch runs fn in a new goroutine. Every call starts its own goroutine,
// even if an identical one is still running. It reports false, without
// running fn, once the scope is closed.
func (s *Scope) Launch(fn func(ctx context.Context)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn(s.ctx)
	}()
	return true
}

// Close cancels the context and waits for launched work to return.
// Safe to call more than once.
func (s *Scope) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

// Active reports whether results produced under ctx may still be applied.
func Active(ctx context.Context) bool { return ctx.Err() == nil }
