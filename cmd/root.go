package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TurnbullEngineering/water-flow-forces/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "wff",
	Short: "Water Flow Forces Calculator",
	Long: `wff - Water Flow Forces Calculator

A CLI tool for estimating design forces on bridge and transmission tower
footings in accordance with AS 5100.2 Section 16 - Forces Resulting from
Water Flow.

This tool helps structural engineers evaluate:
  - Water flow drag on the above-ground leg (F1)
  - Debris mat drag at the water surface (F2)
  - Floating log impact (F3)
  - Water flow drag on the pile over the scoured depth (Fd2)

Single evaluations use 'wff forces'; flood-event spreadsheets are
processed with 'wff batch'.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
