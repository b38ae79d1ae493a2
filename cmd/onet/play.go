package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	onet "github.com/vovakirdan/tui-onet/internal/games/onet"
	"github.com/vovakirdan/tui-onet/internal/platform/tui"
	"github.com/vovakirdan/tui-onet/internal/registry"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play Onet",
	Long: `Start playing straight away. The campaign is the default mode.

Controls:
  WASD/Arrows  - Move cursor
  Space/Enter  - Pick tile (mouse click works too)
  X            - Shuffle (limited per level)
  H            - Hint (costs points)
  N            - New board for this level
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 shuffles, free hints, gentler endless boards
  normal - 3 shuffles, endless boards ramp to 21 tile types
  hard   - 1 shuffle, costly hints, wide endless boards

Examples:
  onet play
  onet play --level 5
  onet play endless --difficulty hard
  onet play --config ./my-onet.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, fmt.Sprintf("Campaign level to start at (1-%d)", onet.LevelCount()))
}

func runPlay(_ *cobra.Command, args []string) {
	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	gameID := modeID(arg)

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", arg)
		fmt.Fprintln(os.Stderr, "Run 'onet levels' to see available modes.")
		os.Exit(1)
	}
	if flagLevel < 0 || flagLevel > onet.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", onet.LevelCount())
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if ls, ok := game.(registry.LevelStarter); ok && flagLevel > 0 {
		ls.StartAt(flagLevel)
	}

	store := openStore()

	// Run the game
	_, runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
