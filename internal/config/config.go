package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// NormalizeConfig holds configuration for the normalize command.
type NormalizeConfig struct {
	In        string
	Out       string
	PgDSN     string
	BatchSize int
	LogLevel  string
}

// LoadNormalize merges config file, environment variables, and flags.
func LoadNormalize(cfgFile string, flags *pflag.FlagSet) (NormalizeConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"out":        "./data/pools.jsonl",
		"batch-size": 500,
		"log-level":  "info",
	})
	if err != nil {
		return NormalizeConfig{}, err
	}

	return NormalizeConfig{
		In:        v.GetString("in"),
		Out:       v.GetString("out"),
		PgDSN:     v.GetString("pg-dsn"),
		BatchSize: v.GetInt("batch-size"),
		LogLevel:  v.GetString("log-level"),
	}, nil
}

// PairDataConfig holds configuration for the pairdata command.
type PairDataConfig struct {
	In       string
	PoolID   string
	TokenIn  string
	TokenOut string
	LogLevel string
}

// LoadPairData merges config file, environment variables, and flags.
func LoadPairData(cfgFile string, flags *pflag.FlagSet) (PairDataConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"log-level": "info",
	})
	if err != nil {
		return PairDataConfig{}, err
	}

	return PairDataConfig{
		In:       v.GetString("in"),
		PoolID:   v.GetString("pool"),
		TokenIn:  v.GetString("token-in"),
		TokenOut: v.GetString("token-out"),
		LogLevel: v.GetString("log-level"),
	}, nil
}

// RoutesConfig holds configuration for the routes command.
type RoutesConfig struct {
	In       string
	TokenIn  string
	TokenOut string
	MaxHops  int
	LogLevel string
}

// LoadRoutes merges config file, environment variables, and flags.
func LoadRoutes(cfgFile string, flags *pflag.FlagSet) (RoutesConfig, error) {
	v, err := newViper(cfgFile, flags, map[string]interface{}{
		"max-hops":  2,
		"log-level": "info",
	})
	if err != nil {
		return RoutesConfig{}, err
	}

	return RoutesConfig{
		In:       v.GetString("in"),
		TokenIn:  v.GetString("token-in"),
		TokenOut: v.GetString("token-out"),
		MaxHops:  v.GetInt("max-hops"),
		LogLevel: v.GetString("log-level"),
	}, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet, defaults map[string]interface{}) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("SOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}
