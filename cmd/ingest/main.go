package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tripsmith/internal/config"
	"tripsmith/internal/infra"
	"tripsmith/internal/ingest"
	"tripsmith/internal/repositories"
)

func main() {
	file := flag.String("file", "data.json", "path to the JSON export of tourist spots")
	migrate := flag.Bool("migrate", true, "create or update the tourist_spots table first")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := infra.NewLogger(cfg.Log.Level)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, *file, *migrate); err != nil {
		logger.Error("ingest failed", zap.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, file string, migrate bool) error {
	db, err := infra.InitPostgresql(cfg.Database.URL, logger)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, logger)

	if migrate {
		if err := infra.MigrateSpots(db); err != nil {
			return err
		}
	}

	logger.Info("starting ingest",
		zap.String("file", file),
		zap.Int("workers", cfg.Ingest.Workers),
		zap.Int("batch_size", cfg.Ingest.BatchSize),
	)

	repo := repositories.NewSpotRepository(db, cfg.Planner.SpotPageSize)
	loader := ingest.NewLoader(repo, cfg.Ingest.Workers, cfg.Ingest.BatchSize, logger)

	_, err = loader.LoadFile(ctx, file)
	return err
}
