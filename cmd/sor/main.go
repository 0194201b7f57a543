package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "sor",
		Short:        "Pool adapter for the smart order router",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	normalizeCmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize raw pool records into canonical pools",
		RunE:  runNormalize,
	}

	normalizeCmd.Flags().String("in", "", "input raw pools JSON (subgraph response or array)")
	normalizeCmd.Flags().String("out", "./data/pools.jsonl", "output canonical pools JSONL")
	normalizeCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for pool upserts")
	normalizeCmd.Flags().Int("batch-size", 500, "pools per storage batch")
	normalizeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(normalizeCmd)

	pairDataCmd := &cobra.Command{
		Use:   "pairdata",
		Short: "Extract swap-formula pair data from a canonical pool",
		RunE:  runPairData,
	}

	pairDataCmd.Flags().String("in", "", "input canonical pools JSONL")
	pairDataCmd.Flags().String("pool", "", "pool ID")
	pairDataCmd.Flags().String("token-in", "", "input token address")
	pairDataCmd.Flags().String("token-out", "", "output token address")
	pairDataCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(pairDataCmd)

	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "List candidate swap paths for a token pair",
		RunE:  runRoutes,
	}

	routesCmd.Flags().String("in", "", "input canonical pools JSONL")
	routesCmd.Flags().String("token-in", "", "input token address")
	routesCmd.Flags().String("token-out", "", "output token address")
	routesCmd.Flags().Int("max-hops", 2, "maximum hops per path")
	routesCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(routesCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
