// Package offline decides, per read, whether data comes from the Canvas API
// or from the on-device cache, and keeps the cache warm after network reads.
package offline

import (
	"context"

	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/connectivity"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/result"
)

// FlagSource reports whether the offline feature is enabled for a scope.
type FlagSource interface {
	OfflineEnabled(ctx context.Context, sc model.Scope) bool
}

// DataSources are the three functions a repository read is built from.
// Local must return Success with an empty value on a cache miss.
type DataSources[T any] struct {
	Network func(ctx context.Context) result.Result[T]
	Local   func(ctx context.Context) result.Result[T]
	Store   func(ctx context.Context, v T) error
}

// Selector holds the collaborators every repository read consults.
type Selector struct {
	l      pkgLog.Logger
	oracle connectivity.Oracle
	flags  FlagSource
}

// New builds a Selector.
func New(l pkgLog.Logger, oracle connectivity.Oracle, flags FlagSource) *Selector {
	return &Selector{l: l, oracle: oracle, flags: flags}
}

// IsOnline asks the connectivity oracle.
func (s *Selector) IsOnline(ctx context.Context) bool {
	return s.oracle.IsOnline(ctx)
}

// OfflineEnabled asks the flag source.
func (s *Selector) OfflineEnabled(ctx context.Context, sc model.Scope) bool {
	return s.flags.OfflineEnabled(ctx, sc)
}

// Fetch runs one read.
//
// With forceRefresh the network is called once and the cache is never read.
// Otherwise the network is used when online, and the cache when offline with
// the offline feature enabled. Offline with the feature disabled still goes
// to the network and returns whatever it fails with. Network results are
// returned untouched; successful ones are stored when the feature is on.
func Fetch[T any](ctx context.Context, s *Selector, sc model.Scope, forceRefresh bool, ds DataSources[T]) result.Result[T] {
	if !forceRefresh && !s.oracle.IsOnline(ctx) && s.flags.OfflineEnabled(ctx, sc) {
		return ds.Local(ctx)
	}
	return fromNetwork(ctx, s, sc, ds.Network, ds.Store)
}

// Write runs a remote mutation. It always calls the network, with no
// offline short circuit. On success with the feature on, patch updates the
// cached copy.
func Write[T any](ctx context.Context, s *Selector, sc model.Scope, network func(ctx context.Context) result.Result[T], patch func(ctx context.Context, v T) error) result.Result[T] {
	return fromNetwork(ctx, s, sc, network, patch)
}

func fromNetwork[T any](ctx context.Context, s *Selector, sc model.Scope, network func(ctx context.Context) result.Result[T], store func(ctx context.Context, v T) error) result.Result[T] {
	res := network(ctx)
	v, ok := res.Value()
	if !ok || store == nil || !s.flags.OfflineEnabled(ctx, sc) {
		return res
	}
	if err := store(ctx, v); err != nil {
		s.l.Warnf(ctx, "offline.store: failed to write local cache for user %d on %s: %v", sc.UserID, sc.Domain, err)
	}
	return res
}

// StaticFlags is a FlagSource with a fixed answer.
type StaticFlags bool

func (f StaticFlags) OfflineEnabled(context.Context, model.Scope) bool { return bool(f) }
