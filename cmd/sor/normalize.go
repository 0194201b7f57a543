package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bogdoslavik/balancer-sor/internal/config"
	"github.com/bogdoslavik/balancer-sor/internal/model"
	"github.com/bogdoslavik/balancer-sor/internal/normalize"
	"github.com/bogdoslavik/balancer-sor/internal/storage"
	"github.com/bogdoslavik/balancer-sor/internal/storage/postgres"
	"github.com/bogdoslavik/balancer-sor/internal/subgraph"
)

func runNormalize(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadNormalize(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.In == "" {
		return fmt.Errorf("input path is required")
	}
	if cfg.Out == "" {
		return fmt.Errorf("output path is required")
	}
	if cfg.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rawPools, err := subgraph.DecodeFile(cfg.In)
	if err != nil {
		return err
	}

	sink := storage.NewJsonlStorage(cfg.Out)

	var pgStore *postgres.Store
	if cfg.PgDSN != "" {
		pgStore, err = postgres.NewStore(ctx, cfg.PgDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pgStore.Close()
	}

	logger.Info("normalize start",
		zap.String("in", cfg.In),
		zap.String("out", cfg.Out),
		zap.Bool("postgres", pgStore != nil),
		zap.Int("raw_pools", len(rawPools)),
	)

	var normalized, skipped int
	batch := make([]model.Pool, 0, cfg.BatchSize)

	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := sink.PutPoolBatch(batch); err != nil {
			return err
		}
		if pgStore != nil {
			if err := pgStore.UpsertPools(ctx, batch); err != nil {
				return err
			}
		}
		batch = batch[:0]
		return nil
	}

	for _, raw := range rawPools {
		pool, err := normalize.Pool(raw)
		if err != nil {
			// An unusable pool is skipped, not fatal.
			skipped++
			logger.Warn("skip pool", zap.String("pool_id", raw.ID), zap.Error(err))
			continue
		}
		normalized++
		batch = append(batch, pool)

		if len(batch) >= cfg.BatchSize {
			if err := flush(); err != nil {
				return err
			}
		}
		if err := ctx.Err(); err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			return err
		}
	}

	if err := flush(); err != nil {
		return err
	}

	logger.Info("normalize complete",
		zap.Int("total", len(rawPools)),
		zap.Int("normalized", normalized),
		zap.Int("skipped", skipped),
	)

	return nil
}
