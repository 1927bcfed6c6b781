// Package solverconfig loads SolverConfig (time limit, optional relative
// MIP gap, node limit for the branch-and-bound backend) from file/env via
// github.com/spf13/viper, mirroring the struct-of-structs-bound-via-
// viper.Unmarshal shape of qhato-ecommerce's config.Config, trimmed to the
// sections this engine actually has (no database/auth/payment).
package solverconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SolverConfig controls the branch-and-bound solver backend.
type SolverConfig struct {
	TimeLimit time.Duration
	NodeLimit int64
	// RelativeGap is loaded and validated (it must not be negative), but
	// solver.NewBranchAndBoundWithConfig does not read it: the BranchAndBound
	// backend takes no gap setting and searches until TimeLimit or NodeLimit
	// ends the search or optimality is reached.
	RelativeGap float64
}

// Load reads SolverConfig from configPath (if non-empty) and the
// PROMOENGINE_-prefixed environment, falling back to defaults for
// anything unset.
func Load(configPath string) (*SolverConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("solver")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read solver config file: %w", err)
		}
	}

	v.SetEnvPrefix("PROMOENGINE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	var cfg SolverConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal solver config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("solver config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("timelimit", "10s")
	v.SetDefault("nodelimit", 2_000_000)
	v.SetDefault("relativegap", 0.0)
}

// Validate rejects nonsensical configuration.
func (c *SolverConfig) Validate() error {
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive")
	}
	if c.NodeLimit <= 0 {
		return fmt.Errorf("node limit must be positive")
	}
	if c.RelativeGap < 0 {
		return fmt.Errorf("relative gap must not be negative")
	}
	return nil
}

// Default returns the zero-configuration SolverConfig (same values Load
// would produce from an empty environment), for callers that do not need
// file/env driven configuration.
func Default() SolverConfig {
	return SolverConfig{TimeLimit: 10 * time.Second, NodeLimit: 2_000_000, RelativeGap: 0}
}
