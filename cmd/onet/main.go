// onet is a terminal Onet (Shisen-Sho style) tile matching game.
//
// Usage:
//
//	onet play [campaign|endless]  - Play a mode directly
//	onet menu                     - Start menu to pick a mode interactively
//	onet levels                   - List campaign levels and modes
//	onet gen                      - Print a generated board
//	onet stats                    - Survey generated boards and stored runs
//	onet scores [mode]            - Show high scores
//	onet config                   - Print the effective game config
//	onet serve                    - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible deals
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - Difficulty preset: easy, normal, hard
//	--player <name>       - Name scores are saved under (default: $USER)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	onet "github.com/vovakirdan/tui-onet/internal/games/onet"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
)

// logger reports CLI warnings and errors on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "onet",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "onet",
	Short: "Onet - connect matching tiles in your terminal",
	Long: `Onet is a tile matching game: pick two identical tiles that can be
joined by a line with at most two turns, running through empty cells or
around the outside of the board. Clear the board to advance.

Available commands:
  play     - Play the campaign or endless mode directly
  menu     - Interactive mode and level picker
  levels   - List campaign levels
  gen      - Generate a board and print it
  stats    - Survey generated boards and stored runs
  scores   - View high scores
  config   - Print the effective game config
  serve    - Start SSH server for remote play

Examples:
  onet play
  onet play endless --difficulty hard
  onet menu
  onet gen --rows 6 --cols 8 --types 10 --json
  onet serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		onet.SetConfigPath(flagConfig)
		return onet.SetDifficultyPreset(flagDifficulty)
	},
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Player name saved with scores")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}
