package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "github.com/instructure/canvas-android-sub046/internal/calendarfilter/delivery/http"
	calendarSQLite "github.com/instructure/canvas-android-sub046/internal/calendarfilter/repository/sqlite"
	calendarUC "github.com/instructure/canvas-android-sub046/internal/calendarfilter/usecase"
	courseRepo "github.com/instructure/canvas-android-sub046/internal/course/repository"
	courseCanvas "github.com/instructure/canvas-android-sub046/internal/course/repository/canvas"
	courseSQLite "github.com/instructure/canvas-android-sub046/internal/course/repository/sqlite"
	syncHTTP "github.com/instructure/canvas-android-sub046/internal/coursesync/delivery/http"
	syncRepo "github.com/instructure/canvas-android-sub046/internal/coursesync/repository"
	syncSQLite "github.com/instructure/canvas-android-sub046/internal/coursesync/repository/sqlite"
	syncUC "github.com/instructure/canvas-android-sub046/internal/coursesync/usecase"
	dashboardHTTP "github.com/instructure/canvas-android-sub046/internal/dashboard/delivery/http"
	dashboardUC "github.com/instructure/canvas-android-sub046/internal/dashboard/usecase"
	groupRepo "github.com/instructure/canvas-android-sub046/internal/group/repository"
	groupCanvas "github.com/instructure/canvas-android-sub046/internal/group/repository/canvas"
	groupSQLite "github.com/instructure/canvas-android-sub046/internal/group/repository/sqlite"
	"github.com/instructure/canvas-android-sub046/internal/middleware"
	moduleHTTP "github.com/instructure/canvas-android-sub046/internal/module/delivery/http"
	moduleRepo "github.com/instructure/canvas-android-sub046/internal/module/repository"
	moduleCanvas "github.com/instructure/canvas-android-sub046/internal/module/repository/canvas"
	moduleSQLite "github.com/instructure/canvas-android-sub046/internal/module/repository/sqlite"
	moduleUC "github.com/instructure/canvas-android-sub046/internal/module/usecase"
)

// repositories are shared by the domains that read the same Canvas data.
type repositories struct {
	courses courseRepo.Repository
	groups  groupRepo.Repository
	modules moduleRepo.Repository
	synced  syncRepo.Repository
}

func (srv HTTPServer) newRepositories() repositories {
	return repositories{
		courses: courseRepo.New(srv.selector, courseCanvas.New(srv.canvas), courseSQLite.New(srv.db)),
		groups:  groupRepo.New(srv.selector, groupCanvas.New(srv.canvas), groupSQLite.New(srv.db)),
		modules: moduleRepo.New(srv.selector, moduleCanvas.New(srv.canvas), moduleSQLite.New(srv.db)),
		synced:  syncSQLite.New(srv.db),
	}
}

// setupDashboardDomain registers /api/v1/screens/dashboard.
func (srv HTTPServer) setupDashboardDomain(ctx context.Context, screens *gin.RouterGroup, mw middleware.Middleware, repos repositories) error {
	uc := dashboardUC.New(srv.l, srv.selector, repos.courses, repos.groups, repos.synced)
	h := dashboardHTTP.New(srv.l, uc, srv.dashboards, srv.allowedOrigins)
	dashboardHTTP.RegisterRoutes(screens.Group("/dashboard"), h, mw)

	srv.l.Infof(ctx, "Dashboard domain registered")
	return nil
}

// setupModuleDomain registers /api/v1/screens/courses/:course_id/modules.
func (srv HTTPServer) setupModuleDomain(ctx context.Context, screens *gin.RouterGroup, mw middleware.Middleware, repos repositories) error {
	uc := moduleUC.New(srv.l, repos.modules)
	h := moduleHTTP.New(srv.l, uc, srv.moduleLists, srv.allowedOrigins)
	moduleHTTP.RegisterRoutes(screens, h, mw)

	srv.l.Infof(ctx, "Module domain registered")
	return nil
}

// setupCalendarDomain registers /api/v1/calendar/filters.
func (srv HTTPServer) setupCalendarDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := calendarUC.New(srv.l, calendarSQLite.New(srv.db), srv.calendarFilterLimit)
	h := calendarHTTP.New(srv.l, uc)
	calendarHTTP.RegisterRoutes(api.Group("/calendar"), h, mw)

	srv.l.Infof(ctx, "Calendar filter domain registered")
	return nil
}

// setupSyncDomain registers /api/v1/sync/courses.
func (srv HTTPServer) setupSyncDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, repos repositories) error {
	uc := syncUC.New(srv.l, srv.flags, repos.synced, repos.courses, repos.modules, srv.syncConcurrency)
	h := syncHTTP.New(srv.l, uc)
	syncHTTP.RegisterRoutes(api.Group("/sync"), h, mw)

	srv.l.Infof(ctx, "Course sync domain registered")
	return nil
}
