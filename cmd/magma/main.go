// magma is a terminal arcade game about hopping across a lava-ridden
// tile board.
//
// Usage:
//
//	magma play               - Play the campaign
//	magma play --endless     - Play endless mode
//	magma menu               - Start the interactive mode picker
//	magma list               - List available modes
//	magma scores <mode>      - Show the leaderboard for a mode
//	magma serve              - Start SSH server for remote play
//	magma api                - Start the leaderboard HTTP API
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.magma/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jrichson/time-mission-magma-mayhem/internal/config"
	"github.com/jrichson/time-mission-magma-mayhem/internal/games/magma"
	"github.com/jrichson/time-mission-magma-mayhem/internal/level"
	"github.com/jrichson/time-mission-magma-mayhem/internal/platform/tui"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "magma",
	Short: "Magma Mayhem - hop across the lava in your terminal",
	Long: `Magma Mayhem is a terminal arcade game. Hop tile to tile across a
board of animated lava patterns, grab every gem, and clear all twelve
levels before the clock eats your score.

Available commands:
  play     - Play the campaign (or --endless)
  menu     - Interactive mode picker
  list     - Show available modes
  scores   - View the leaderboard
  serve    - Start SSH server for remote play
  api      - Start the leaderboard HTTP API

Examples:
  magma play
  magma play --endless --difficulty hard
  magma menu
  magma serve --ssh :2222
  magma scores magma`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.magma/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(apiCmd)
}

// submitLimits returns the per-mode leaderboard caps. The campaign can
// bank at most the full award for every level; endless runs are unbounded.
func submitLimits(configPath string) map[string]tui.SubmitLimits {
	cfg, err := config.LoadMagma(configPath)
	if err != nil {
		cfg = config.DefaultMagmaConfig()
	}
	return map[string]tui.SubmitLimits{
		"magma": {
			MaxScore: magma.MaxCampaignScore(cfg.Scoring.MaxLevelScore, level.Count),
			MaxLevel: level.Count,
		},
		"magma_endless": {},
	}
}
