package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/platform/tui"
	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode or campaign level, then play",
	Long: `Open the menu. Leaving a paused or finished game with B or Esc
comes back here, so several runs can be played in one sitting.

Controls:
  Up/Down/j/k  - Move
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  onet menu
  onet menu --difficulty easy --db ./scores.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		choice, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = choice.Config

		var again bool
		switch {
		case choice.Quit:
			return nil
		case choice.WantsScoreboard:
			again, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
		default:
			again, err = playChoice(store, choice)
		}
		if err != nil || !again {
			return err
		}
	}
}

// playChoice runs the picked mode and reports whether the player went back
// to the menu.
func playChoice(store *storage.Store, choice tui.MenuResult) (bool, error) {
	game, err := registry.Create(choice.GameID)
	if err != nil {
		return false, err
	}
	if ls, ok := game.(registry.LevelStarter); ok && choice.StartLevel > 0 {
		ls.StartAt(choice.StartLevel)
	}

	rc := choice.Config
	if flagSeed == 0 {
		rc.Seed = time.Now().UnixNano() // Fresh deal unless pinned
	}
	return tui.Run(game, store, rc)
}
