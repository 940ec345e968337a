package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Canopy is a hierarchical state tree engine for tick-driven actors",
	Long: `Canopy drives actors through a tree of behavioral states instead of a flat
state machine. This CLI runs the bundled platformer demo: simulate it in the
terminal, export its tree as a diagram, or serve a live inspector.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	switch raw, _ := cmd.Flags().GetString("log-level"); raw {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	return logging.New(level)
}
