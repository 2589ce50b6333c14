package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jrichson/time-mission-magma-mayhem/internal/core"
	"github.com/jrichson/time-mission-magma-mayhem/internal/games/magma"
	"github.com/jrichson/time-mission-magma-mayhem/internal/level"
	"github.com/jrichson/time-mission-magma-mayhem/internal/platform/tui"
	"github.com/jrichson/time-mission-magma-mayhem/internal/registry"
	"github.com/jrichson/time-mission-magma-mayhem/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagEndless    bool
	flagLevel      int
	flagName       string
	flagCharacter  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Magma Mayhem",
	Long: `Start a run.

Controls:
  WASD/Arrows - Hop
  P           - Pause
  R           - Restart (after game over)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Slower lava patterns
  normal - Default tuning
  hard   - Faster lava patterns
  fixed  - No per-level speedup

Examples:
  magma play
  magma play --endless
  magma play --difficulty hard --level 5
  magma play --name frogger --character penguin
  magma play --config ./my-magma.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagEndless, "endless", false, "Play endless mode (the level script cycles forever)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, fmt.Sprintf("Campaign start level (1-%d)", level.Count))
	playCmd.Flags().StringVar(&flagName, "name", "", "Leaderboard name (skips the entry prompt)")
	playCmd.Flags().StringVar(&flagCharacter, "character", "", "Character skin: frog, chick, fox, penguin")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "magma"
	if flagEndless {
		gameID = "magma_endless"
	}

	if flagLevel < 0 || flagLevel > level.Count {
		fmt.Fprintf(os.Stderr, "Error: --level must be between 1 and %d\n", level.Count)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the game before creation
	magma.SetConfigPath(flagConfig)
	magma.SetDifficultyPreset(flagDifficulty)
	if flagLevel > 0 && !flagEndless {
		magma.SetStartLevel(flagLevel)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	identity := tui.PlayerIdentity{Name: flagName, Character: flagCharacter}
	limits := submitLimits(flagConfig)[gameID]

	runErr := tui.Run(game, store, cfg, identity, limits)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
