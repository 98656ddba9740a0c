// Package featureflag exposes the Canvas environment feature flags, most
// importantly the switch for offline mode.
package featureflag

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/instructure/canvas-android-sub046/internal/featureflag/repository"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/pkg/connectivity"
	pkgLog "github.com/instructure/canvas-android-sub046/pkg/log"
)

const (
	defaultCacheTTL  = 5 * time.Minute
	defaultCacheSize = 64
)

// Config tunes the provider. Override, when set, answers OfflineEnabled
// without consulting Canvas or the cache.
type Config struct {
	Override *bool
	CacheTTL time.Duration
}

type implProvider struct {
	l       pkgLog.Logger
	oracle  connectivity.Oracle
	network repository.NetworkDataSource
	local   repository.LocalDataSource
	cfg     Config
	cache   *expirable.LRU[model.Scope, model.FeatureFlags]
}

// New builds a Provider. Flags are fetched from Canvas when online and
// saved locally; the local copy is used when offline or when the fetch
// fails.
func New(l pkgLog.Logger, oracle connectivity.Oracle, network repository.NetworkDataSource, local repository.LocalDataSource, cfg Config) Provider {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaultCacheTTL
	}
	return &implProvider{
		l:       l,
		oracle:  oracle,
		network: network,
		local:   local,
		cfg:     cfg,
		cache:   expirable.NewLRU[model.Scope, model.FeatureFlags](defaultCacheSize, nil, cfg.CacheTTL),
	}
}

func (p *implProvider) OfflineEnabled(ctx context.Context, sc model.Scope) bool {
	if p.cfg.Override != nil {
		return *p.cfg.Override
	}
	flags, err := p.Flags(ctx, sc)
	if err != nil {
		p.l.Warnf(ctx, "featureflag.OfflineEnabled: %v", err)
		return false
	}
	return flags.Enabled(model.FlagOfflineMode)
}

func (p *implProvider) Flags(ctx context.Context, sc model.Scope) (model.FeatureFlags, error) {
	if flags, ok := p.cache.Get(sc); ok {
		return flags, nil
	}

	if p.oracle.IsOnline(ctx) {
		flags, err := p.network.EnvironmentFlags(ctx).Unwrap()
		if err == nil {
			if err := p.local.SaveEnvironmentFlags(ctx, sc, flags); err != nil {
				p.l.Warnf(ctx, "featureflag.Flags: failed to save flags: %v", err)
			}
			p.cache.Add(sc, flags)
			return flags, nil
		}
		p.l.Warnf(ctx, "featureflag.Flags: network read failed, using local copy: %v", err)
	}

	flags, err := p.local.EnvironmentFlags(ctx, sc).Unwrap()
	if err != nil {
		return nil, err
	}
	p.cache.Add(sc, flags)
	return flags, nil
}

func (p *implProvider) Invalidate(sc model.Scope) {
	p.cache.Remove(sc)
}
