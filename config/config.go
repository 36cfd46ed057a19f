package config

import (
	"fmt"

	"github.com/cameroncuttingedge/tic_tac_toe_td/game"
	"github.com/rs/zerolog"
)

// Config holds all training and play settings
type Config struct {
	// Learning
	Episodes int     `mapstructure:"episodes"`
	Epsilon  float64 `mapstructure:"epsilon"`
	Alpha    float64 `mapstructure:"alpha"`
	Seed     uint64  `mapstructure:"seed"`

	// Reporting
	ReportEvery int    `mapstructure:"report-every"`
	ChartPath   string `mapstructure:"chart-path"`
	ChartWindow int    `mapstructure:"chart-window"`

	// Play
	HumanSymbol string `mapstructure:"human-symbol"`
	Verbose     bool   `mapstructure:"verbose"`
	Colors      bool   `mapstructure:"colors"`
	Addr        string `mapstructure:"addr"`

	// Logging
	LogLevel string `mapstructure:"log-level"`
	LogFile  string `mapstructure:"log-file"`
}

// Default returns a config with sensible defaults
func Default() *Config {
	return &Config{
		Episodes:    10000,
		Epsilon:     0.1,
		Alpha:       0.5,
		ReportEvery: 1000,
		ChartWindow: 200,
		HumanSymbol: "O",
		Verbose:     true,
		Colors:      true,
		Addr:        ":8080",
		LogLevel:    "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Episodes < 0 {
		return fmt.Errorf("episodes must not be negative")
	}
	if c.Epsilon < 0 || c.Epsilon > 1 {
		return fmt.Errorf("epsilon must be in [0,1], got %v", c.Epsilon)
	}
	if c.Alpha <= 0 || c.Alpha > 1 {
		return fmt.Errorf("alpha must be in (0,1], got %v", c.Alpha)
	}
	if c.ChartPath != "" && c.ChartWindow <= 0 {
		return fmt.Errorf("chart-window must be positive")
	}
	if _, ok := game.ParsePlayer(c.HumanSymbol); !ok {
		return fmt.Errorf("human-symbol must be X or O, got %q", c.HumanSymbol)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	return nil
}

func (c *Config) Human() game.Player {
	p, _ := game.ParsePlayer(c.HumanSymbol)
	return p
}
