package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	_ "github.com/noah-isme/sma-timetable-api/api/swagger"
	"github.com/noah-isme/sma-timetable-api/internal/handler"
	"github.com/noah-isme/sma-timetable-api/internal/query"
	"github.com/noah-isme/sma-timetable-api/internal/repository"
	"github.com/noah-isme/sma-timetable-api/internal/router"
	"github.com/noah-isme/sma-timetable-api/internal/service"
	"github.com/noah-isme/sma-timetable-api/pkg/config"
	"github.com/noah-isme/sma-timetable-api/pkg/database"
	"github.com/noah-isme/sma-timetable-api/pkg/export"
	"github.com/noah-isme/sma-timetable-api/pkg/logger"
)

// @title Timetable Reporting API
// @version 1.0.0
// @description Read-only timetable, room usage and idle resource reports
// @BasePath /api
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		logr.Fatal("failed to connect database", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer db.Close() //nolint:errcheck

	dialect, err := query.DialectFor(cfg.Database.Driver)
	if err != nil {
		logr.Fatal("unsupported database driver", zap.Error(err))
	}

	metrics := service.NewMetricsService()
	src := repository.Source{DB: db, Dialect: dialect, Observer: metrics}
	validate := service.NewQueryValidator()

	dashboardSvc := service.NewDashboardService(service.DashboardServiceParams{
		Repository: repository.NewDashboardRepository(src),
		Validator:  validate,
		Logger:     logr,
		Config: service.DashboardServiceConfig{
			Location:           cfg.Reporting.Location,
			ProgramIDThreshold: cfg.Reporting.ProgramIDThreshold,
		},
	})
	timetableSvc := service.NewTimetableService(repository.NewTimetableRepository(src), validate, logr, service.TimetableServiceConfig{
		Location:         cfg.Reporting.Location,
		ByDayDefaultSpan: cfg.Reporting.ByDayDefaultSpan,
	})
	resourceSvc := service.NewResourceService(repository.NewResourceRepository(src), validate, logr, cfg.Reporting.Location)
	var csvOpts []export.CSVOption
	if cfg.Exports.CSVBOM {
		csvOpts = append(csvOpts, export.WithBOM())
	}
	exportSvc := service.NewExportService(service.ExportServiceParams{
		Timetable: dashboardSvc,
		Days:      timetableSvc,
		CSV:       export.NewCSVExporter(csvOpts...),
		Location:  cfg.Reporting.Location,
		Validator: validate,
		Logger:    logr,
	})

	r := router.New(router.Options{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
		EnableExports:  cfg.Exports.Enabled,
		EnableLegacy:   cfg.Legacy.RoutesEnabled,
		EnableDocs:     cfg.Env != config.EnvProduction,
		Logger:         logr,
		Observer:       metrics,
	}, router.Handlers{
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		Timetable: handler.NewTimetableHandler(timetableSvc),
		Resource:  handler.NewResourceHandler(resourceSvc),
		Export:    handler.NewExportHandler(exportSvc),
		Metrics:   handler.NewMetricsHandler(metrics, db),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Sugar().Infow("server starting", "addr", srv.Addr, "env", cfg.Env, "driver", dialect.Name())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Sugar().Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("graceful shutdown failed", zap.Error(err))
	}
}
