package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bogdoslavik/balancer-sor/internal/config"
	"github.com/bogdoslavik/balancer-sor/internal/route"
)

func runRoutes(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadRoutes(cfgFile, cmd.Flags())
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
	if cfg.TokenIn == "" || cfg.TokenOut == "" {
		return fmt.Errorf("token-in and token-out are required")
	}
	if cfg.MaxHops < 1 {
		return fmt.Errorf("max-hops must be at least 1")
	}

	pools, err := loadCanonicalPools(cfg.In)
	if err != nil {
		return err
	}

	paths, err := route.Candidates(pools, cfg.TokenIn, cfg.TokenOut, cfg.MaxHops)
	if err != nil {
		return err
	}

	logger.Info("routes built",
		zap.Int("pools", len(pools)),
		zap.Int("paths", len(paths)),
	)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(paths)
}
