package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/cameroncuttingedge/tic_tac_toe_td/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "tictactoe",
	Short: "Tic-tac-toe agents that learn by self-play",
	Long: `Two agents learn tic-tac-toe against each other with tabular
state-value learning and temporal-difference updates. After training
you can play against them on the console or over HTTP.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()

	// Learning
	flags.Int("episodes", cfg.Episodes, "Number of self-play training episodes")
	flags.Float64("epsilon", cfg.Epsilon, "Exploration rate")
	flags.Float64("alpha", cfg.Alpha, "Learning rate")
	flags.Uint64("seed", cfg.Seed, "Random seed (0 seeds from the clock)")

	// Reporting
	flags.Int("report-every", cfg.ReportEvery, "Log training progress every N episodes (0 disables)")
	flags.String("chart-path", cfg.ChartPath, "Write an HTML training chart to this path")
	flags.Int("chart-window", cfg.ChartWindow, "Episodes per point in the training chart")

	// Play
	flags.String("human-symbol", cfg.HumanSymbol, "Side played by the human (X or O)")
	flags.Bool("verbose", cfg.Verbose, "Show the agent's move values while playing")
	flags.Bool("colors", cfg.Colors, "Colored console output")
	flags.String("addr", cfg.Addr, "HTTP listen address for serve")

	// Logging
	flags.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flags.String("log-file", cfg.LogFile, "Also append logs to this file")

	// Bind flags to viper for environment variable support
	viper.BindPFlags(flags)
	viper.SetEnvPrefix("TTT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(trainCmd, playCmd, serveCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return InitializeLogger(cfg.LogLevel, cfg.LogFile)
}

func InitializeLogger(level, file string) error {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}
	if file != "" {
		runLogFile, err := os.OpenFile(
			file,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY,
			0664,
		)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(runLogFile, out)
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
