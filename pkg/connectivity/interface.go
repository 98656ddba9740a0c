// Package connectivity answers whether the Canvas API is reachable.
package connectivity

import "context"

// Oracle reports the current connectivity state.
type Oracle interface {
	IsOnline(ctx context.Context) bool
}

// Static is an Oracle with a fixed answer. Used for forced-offline
// operation and in tests.
type Static bool

func (s Static) IsOnline(context.Context) bool { return bool(s) }
