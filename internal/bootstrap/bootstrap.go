// Package bootstrap builds the infrastructure shared by the binaries: the
// Canvas client, the local cache, the connectivity oracle, the feature
// flag provider and the online/offline selector.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/instructure/canvas-android-sub046/config"
	"github.com/instructure/canvas-android-sub046/internal/featureflag"
	flagCanvas "github.com/instructure/canvas-android-sub046/internal/featureflag/repository/canvas"
	flagSQLite "github.com/instructure/canvas-android-sub046/internal/featureflag/repository/sqlite"
	"github.com/instructure/canvas-android-sub046/internal/model"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	"github.com/instructure/canvas-android-sub046/pkg/canvas"
	"github.com/instructure/canvas-android-sub046/pkg/connectivity"
	"github.com/instructure/canvas-android-sub046/pkg/log"
	"github.com/instructure/canvas-android-sub046/pkg/sqlite"
)

// Infra is what every binary needs to talk to Canvas and the cache.
type Infra struct {
	DB       *sql.DB
	Canvas   *canvas.Client
	Oracle   connectivity.Oracle
	Flags    featureflag.Provider
	Selector *offline.Selector
	Scope    model.Scope
}

// Close releases the local cache.
func (in *Infra) Close() error {
	return in.DB.Close()
}

// New opens the cache, builds the Canvas client and resolves the account
// scope. When canvas.user_id is 0 the id is read from /users/self, which
// needs the network.
func New(ctx context.Context, l log.Logger, cfg *config.Config) (*Infra, error) {
	db, err := sqlite.Open(ctx, sqlite.Config{
		Path:         cfg.Database.Path,
		BusyTimeout:  cfg.Database.BusyTimeout,
		MaxOpenConns: cfg.Database.MaxOpenConns,
	})
	if err != nil {
		return nil, fmt.Errorf("open cache: %w", err)
	}

	client, err := canvas.NewClient(canvas.Config{
		BaseURL:           cfg.Canvas.BaseURL,
		PerPage:           cfg.Canvas.PerPage,
		RequestsPerSecond: cfg.Canvas.RequestsPerSecond,
		Burst:             cfg.Canvas.Burst,
		Timeout:           cfg.Canvas.Timeout,
		TokenSource: canvas.TokenSource(context.WithoutCancel(ctx), canvas.AuthConfig{
			BaseURL:      cfg.Canvas.BaseURL,
			AccessToken:  cfg.Canvas.AccessToken,
			RefreshToken: cfg.Canvas.RefreshToken,
			ClientID:     cfg.Canvas.ClientID,
			ClientSecret: cfg.Canvas.ClientSecret,
		}),
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	var oracle connectivity.Oracle
	if cfg.Offline.ForceOffline {
		l.Warnf(ctx, "Connectivity forced offline by configuration")
		oracle = connectivity.Static(false)
	} else {
		oracle = connectivity.NewProber(l, connectivity.ProberConfig{
			URL:     cfg.Connectivity.ProbeURL,
			TTL:     cfg.Connectivity.TTL,
			Timeout: cfg.Connectivity.Timeout,
		})
	}

	flags := featureflag.New(l, oracle, flagCanvas.New(client), flagSQLite.New(db), featureflag.Config{
		Override: cfg.Offline.EnabledOverride,
		CacheTTL: cfg.Offline.FlagsCacheTTL,
	})

	sc := model.Scope{UserID: cfg.Canvas.UserID, Domain: client.Domain()}
	if sc.UserID == 0 {
		user, err := canvas.Self(ctx, client).Unwrap()
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("resolve canvas user (set canvas.user_id to start offline): %w", err)
		}
		sc.UserID = user.ID
		l.Infof(ctx, "Acting as Canvas user %d (%s) on %s", user.ID, user.Name, sc.Domain)
	}

	return &Infra{
		DB:       db,
		Canvas:   client,
		Oracle:   oracle,
		Flags:    flags,
		Selector: offline.New(l, oracle, flags),
		Scope:    sc,
	}, nil
}
