package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wdcheck/internal/config"
	"github.com/GlebRadaev/wdcheck/internal/fixture"
	"github.com/GlebRadaev/wdcheck/internal/pg"
	"github.com/GlebRadaev/wdcheck/pkg/logger"
)

func main() {
	records := flag.Int("n", fixture.DefaultRecords, "number of player rows to insert")
	keep := flag.Bool("keep", false, "keep existing rows instead of truncating the player table")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("Can't load config")
	}
	if err = logger.InitLogger(cfg); err != nil {
		log.Fatal().Err(err).Msg("Can't init logger")
	}

	if err = seed(ctx, cfg, *records, *keep); err != nil {
		zap.L().Fatal("Seeding failed", zap.Error(err))
	}
	zap.L().Info("Seeding finished", zap.Int("records", *records))
}

func seed(ctx context.Context, cfg *config.Config, n int, keep bool) error {
	connCtx, cancel := context.WithTimeout(ctx, fixture.SetupTimeout)
	defer cancel()

	pool, err := pg.Connect(connCtx, cfg.Database)
	if err != nil {
		return err
	}
	helper := fixture.New(pool)
	defer helper.Close()

	if !keep {
		if err = helper.ClearPlayerTable(ctx); err != nil {
			return err
		}
	}
	return helper.InsertTestData(ctx, n)
}
