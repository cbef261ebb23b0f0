package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/config"
	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
	"github.com/mamadbah2/cropstats/internal/repository/mongodb"
	"github.com/mamadbah2/cropstats/internal/repository/sheets"
	"github.com/mamadbah2/cropstats/internal/scheduler"
	"github.com/mamadbah2/cropstats/internal/server/handlers"
	"github.com/mamadbah2/cropstats/internal/server/router"
	dashboardsvc "github.com/mamadbah2/cropstats/internal/service/dashboard"
	refreshsvc "github.com/mamadbah2/cropstats/internal/service/refresh"
	"github.com/mamadbah2/cropstats/pkg/clients/snapshot"
	"github.com/mamadbah2/cropstats/pkg/logger"
)

const initialLoadTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	loader, closeLoader, err := newLoader(context.Background(), cfg, baseLogger)
	if err != nil {
		baseLogger.Fatal("failed to init data source", zap.String("source", cfg.Data.Source), zap.Error(err))
	}
	defer closeLoader()

	reg := initialRegistry(loader, baseLogger)

	dashboardSvc := dashboardsvc.NewService(reg, baseLogger.Named("svc.dashboard"))
	refreshSvc := refreshsvc.NewService(reg, loader, cfg.Admin.APIKey, cfg.Refresh.Timeout, baseLogger.Named("svc.refresh"))

	engine := router.New(router.Handlers{
		API:    handlers.NewAPIHandler(dashboardSvc, baseLogger.Named("handlers.api")),
		Admin:  handlers.NewAdminHandler(refreshSvc, baseLogger.Named("handlers.admin")),
		Render: handlers.NewRenderHandler(dashboardSvc, reg, baseLogger.Named("handlers.render")),
	}, cfg.Server.CORSAllowedOrigins, baseLogger.Named("router"))

	if cfg.Refresh.Enabled {
		sched, err := scheduler.NewScheduler(cfg.Refresh, refreshSvc, baseLogger.Named("scheduler"))
		if err != nil {
			baseLogger.Fatal("failed to init scheduler", zap.Error(err))
		}
		if err := sched.Start(); err != nil {
			baseLogger.Fatal("failed to start scheduler", zap.Error(err))
		}
		defer sched.Stop()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port), zap.String("source", loader.Name()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	refreshSvc.Wait()
}

// newLoader builds the configured data source. The returned func releases
// its connections.
func newLoader(ctx context.Context, cfg *config.Config, baseLogger *zap.Logger) (registry.Loader, func(), error) {
	noop := func() {}

	switch cfg.Data.Source {
	case config.SourceMongoDB:
		mongoRepo, err := mongodb.NewMongoDBRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			return nil, noop, err
		}
		closeRepo := func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}
		return mongodb.Loader{Repo: mongoRepo}, closeRepo, nil
	case config.SourceSheets:
		sheetsRepo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			return nil, noop, err
		}
		return sheets.NewLoader(sheetsRepo, baseLogger.Named("repo.sheets")), noop, nil
	case config.SourceHTTP:
		return snapshot.NewClient(cfg.Snapshot), noop, nil
	case config.SourceFixtures:
		return fixtures.Loader{}, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown data source %q", cfg.Data.Source)
	}
}

// initialRegistry loads the first dataset, serving the built-in tables when
// the configured source is unreachable or its data is rejected.
func initialRegistry(loader registry.Loader, baseLogger *zap.Logger) *registry.Registry {
	regLogger := baseLogger.Named("registry")

	ctx, cancel := context.WithTimeout(context.Background(), initialLoadTimeout)
	defer cancel()

	ds, err := loader.Load(ctx)
	if err == nil {
		reg, err := registry.New(ds, loader.Name(), regLogger)
		if err == nil {
			return reg
		}
		baseLogger.Warn("dataset rejected, serving built-in tables", zap.String("source", loader.Name()), zap.Error(err))
	} else {
		baseLogger.Warn("initial load failed, serving built-in tables", zap.String("source", loader.Name()), zap.Error(err))
	}

	reg, err := registry.New(fixtures.Dataset(), fixtures.Loader{}.Name(), regLogger)
	if err != nil {
		baseLogger.Fatal("built-in tables are invalid", zap.Error(err))
	}
	return reg
}
