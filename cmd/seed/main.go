// Command seed writes the built-in tables to a data source so the server can
// be pointed at it with DATA_SOURCE.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/cropstats/internal/config"
	"github.com/mamadbah2/cropstats/internal/registry"
	"github.com/mamadbah2/cropstats/internal/render/workbook"
	"github.com/mamadbah2/cropstats/internal/repository/fixtures"
	"github.com/mamadbah2/cropstats/internal/repository/mongodb"
	"github.com/mamadbah2/cropstats/internal/repository/sheets"
	"github.com/mamadbah2/cropstats/pkg/logger"
)

func main() {
	target := flag.String("target", config.SourceMongoDB, "where to write: mongodb, sheets or xlsx")
	out := flag.String("out", "cropstats.xlsx", "output file for -target=xlsx")
	envFile := flag.String("env", "", "optional env file")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Server.LogLevel))
	defer func() { _ = baseLogger.Sync() }()

	ds := fixtures.Dataset()
	warnings, err := registry.Validate(ds)
	if err != nil {
		baseLogger.Fatal("built-in tables are invalid", zap.Error(err))
	}
	for _, w := range warnings {
		baseLogger.Warn("dataset warning", zap.String("warning", w))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := seed(ctx, *target, *out, cfg, ds, baseLogger); err != nil {
		baseLogger.Fatal("seed failed", zap.String("target", *target), zap.Error(err))
	}
	baseLogger.Info("seed completed", zap.String("target", *target), zap.String("edition", ds.Edition))
}

func seed(ctx context.Context, target, out string, cfg *config.Config, ds *registry.Dataset, baseLogger *zap.Logger) error {
	switch target {
	case config.SourceMongoDB:
		if cfg.MongoDB.URI == "" {
			return fmt.Errorf("MONGODB_URI must be provided")
		}
		repo, err := mongodb.NewMongoDBRepository(ctx, cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			return err
		}
		defer func() {
			if err := repo.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		return repo.SaveSnapshot(ctx, ds)

	case config.SourceSheets:
		repo, err := sheets.NewGoogleSheetRepository(ctx, cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			return err
		}
		return sheets.Write(ctx, repo, ds)

	case "xlsx":
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("create %s: %w", out, err)
		}
		if err := workbook.Write(f, ds); err != nil {
			f.Close()
			return err
		}
		return f.Close()

	default:
		return fmt.Errorf("unknown target %q", target)
	}
}
