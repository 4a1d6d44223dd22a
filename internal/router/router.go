package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/sma-timetable-api/internal/handler"
	"github.com/noah-isme/sma-timetable-api/internal/middleware"
	appErrors "github.com/noah-isme/sma-timetable-api/pkg/errors"
	"github.com/noah-isme/sma-timetable-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/sma-timetable-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/sma-timetable-api/pkg/middleware/requestid"
	"github.com/noah-isme/sma-timetable-api/pkg/response"
)

// Original route layout kept reachable as aliases.
const (
	LegacyTimetablePrefix = "/timetable/api"
	LegacyResourcePrefix  = "/resources/api"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Dashboard *handler.DashboardHandler
	Timetable *handler.TimetableHandler
	Resource  *handler.ResourceHandler
	Export    *handler.ExportHandler
	Metrics   *handler.MetricsHandler
}

// Options controls the optional parts of the route table.
type Options struct {
	APIPrefix      string
	AllowedOrigins []string
	RequestTimeout time.Duration
	EnableExports  bool
	EnableLegacy   bool
	EnableDocs     bool
	Logger         *zap.Logger
	Observer       middleware.HTTPObserver
}

// New builds the gin engine with middleware and every report route.
func New(opts Options, h Handlers) *gin.Engine {
	if opts.APIPrefix == "" {
		opts.APIPrefix = "/api"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(opts.Logger))
	r.Use(corsmiddleware.New(opts.AllowedOrigins))
	r.Use(middleware.Metrics(opts.Observer))
	r.NoRoute(func(c *gin.Context) {
		response.Error(c, appErrors.ErrNotFound)
	})

	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Ready)
	r.GET("/metrics", h.Metrics.Prometheus)
	r.GET("/metrics/summary", h.Metrics.Summary)
	if opts.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	reports := []gin.HandlerFunc{middleware.Timeout(opts.RequestTimeout), middleware.WithResponseMeta()}

	api := r.Group(opts.APIPrefix, reports...)
	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", h.Dashboard.Stats)
	dashboard.GET("/timetable", h.Dashboard.Timetable)
	dashboard.GET("/filters", h.Dashboard.Filters)
	registerTimetable(api, h.Timetable)
	registerResources(api, h.Resource)

	if opts.EnableExports {
		exports := api.Group("/exports")
		exports.GET("/timetable", h.Export.Timetable)
		exports.GET("/day-details", h.Export.DayDetails)
	}

	if opts.EnableLegacy {
		registerTimetable(r.Group(LegacyTimetablePrefix, legacyChain(reports, LegacyTimetablePrefix, opts.APIPrefix)...), h.Timetable)
		registerResources(r.Group(LegacyResourcePrefix, legacyChain(reports, LegacyResourcePrefix, opts.APIPrefix)...), h.Resource)
	}

	return r
}

func legacyChain(base []gin.HandlerFunc, legacyPrefix, apiPrefix string) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, len(base)+1)
	chain = append(chain, base...)
	return append(chain, middleware.LegacyRoute(legacyPrefix, apiPrefix))
}

func registerTimetable(g *gin.RouterGroup, h *handler.TimetableHandler) {
	g.GET("/by-division", h.ByDivision)
	g.GET("/division-details", h.DivisionDetails)
	g.GET("/by-faculty", h.ByFaculty)
	g.GET("/faculty-details", h.FacultyDetails)
	g.GET("/by-day", h.ByDay)
	g.GET("/day-details", h.DayDetails)
}

func registerResources(g *gin.RouterGroup, h *handler.ResourceHandler) {
	g.GET("/classrooms", h.Classrooms)
	g.GET("/classroom-schedule", h.ClassroomSchedule)
	g.GET("/unscheduled", h.Unscheduled)
}
