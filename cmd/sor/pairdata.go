package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bogdoslavik/balancer-sor/internal/config"
	"github.com/bogdoslavik/balancer-sor/internal/pairdata"
)

func runPairData(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadPairData(cfgFile, cmd.Flags())
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
	if cfg.PoolID == "" {
		return fmt.Errorf("pool id is required")
	}
	if cfg.TokenIn == "" || cfg.TokenOut == "" {
		return fmt.Errorf("token-in and token-out are required")
	}

	pools, err := loadCanonicalPools(cfg.In)
	if err != nil {
		return err
	}

	for _, pool := range pools {
		if pool.ID != cfg.PoolID {
			continue
		}

		bundle, err := pairdata.ForPool(pool, cfg.TokenIn, cfg.TokenOut)
		if err != nil {
			return err
		}

		logger.Info("pair data extracted",
			zap.String("pool_id", pool.ID),
			zap.String("pool_type", string(pool.PoolType)),
		)

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(bundle)
	}

	return fmt.Errorf("pool %s not found in %s", cfg.PoolID, cfg.In)
}
