package httpserver

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	dashboardVM "github.com/instructure/canvas-android-sub046/internal/dashboard/viewmodel"
	"github.com/instructure/canvas-android-sub046/internal/model"
	moduleVM "github.com/instructure/canvas-android-sub046/internal/module/viewmodel"
	"github.com/instructure/canvas-android-sub046/internal/offline"
	vm "github.com/instructure/canvas-android-sub046/internal/viewmodel"
	"github.com/instructure/canvas-android-sub046/pkg/canvas"
	"github.com/instructure/canvas-android-sub046/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	allowedOrigins  vm.Origins

	// Shared infrastructure
	db       *sql.DB
	canvas   *canvas.Client
	selector *offline.Selector
	flags    offline.FlagSource
	scope    model.Scope

	// Domain settings
	calendarFilterLimit int
	syncConcurrency     int

	// Open screen sessions
	dashboards  *vm.Registry[*dashboardVM.ViewModel]
	moduleLists *vm.Registry[*moduleVM.ViewModel]
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	DB       *sql.DB
	Canvas   *canvas.Client
	Selector *offline.Selector
	Flags    offline.FlagSource
	Scope    model.Scope

	CalendarFilterLimit int
	SyncConcurrency     int
	SessionTTL          time.Duration
	MaxSessions         int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	srv := &HTTPServer{
		l:                   logger,
		gin:                 gin.New(),
		port:                cfg.Port,
		mode:                cfg.Mode,
		environment:         cfg.Environment,
		shutdownTimeout:     cfg.ShutdownTimeout,
		allowedOrigins:      vm.Origins(cfg.AllowedOrigins),
		db:                  cfg.DB,
		canvas:              cfg.Canvas,
		selector:            cfg.Selector,
		flags:               cfg.Flags,
		scope:               cfg.Scope,
		calendarFilterLimit: cfg.CalendarFilterLimit,
		syncConcurrency:     cfg.SyncConcurrency,
		dashboards:          vm.NewRegistry[*dashboardVM.ViewModel](cfg.MaxSessions, cfg.SessionTTL),
		moduleLists:         vm.NewRegistry[*moduleVM.ViewModel](cfg.MaxSessions, cfg.SessionTTL),
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.canvas == nil {
		return errors.New("canvas client is required")
	}
	if srv.selector == nil {
		return errors.New("offline selector is required")
	}
	if srv.flags == nil {
		return errors.New("feature flag source is required")
	}
	return nil
}
