// flappy is a Flappy Bird-style arcade game for the terminal.
//
// Usage:
//
//	flappy                   - Play a game (same as "flappy play")
//	flappy play              - Play a game
//	flappy scores            - Show high scores
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective game config as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.flappy/scores.db)
//	--config <path>       - Load game config from a YAML file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "flappy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - Fly through the pipes in your terminal",
	Long: `Flappy is a terminal take on the classic one-button arcade game.
Keep the bird in the air and steer it through the gaps between pipes.

Available commands:
  play     - Play a game (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  flappy
  flappy play --difficulty hard
  flappy scores --tui
  flappy serve --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureLogger()
	},
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// configureLogger applies the --debug flag to the package logger.
func configureLogger() {
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
		return
	}
	logger.SetLevel(log.InfoLevel)
}

// loadGameConfig resolves the game config from --config and applies the
// --difficulty preset on top of it.
func loadGameConfig() (config.GameConfig, config.DifficultyPreset, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.GameConfig{}, "", err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, "", fmt.Errorf("loading config: %w", err)
	}

	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, "", fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, preset, nil
}
