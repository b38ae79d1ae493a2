package main

import (
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-onet/internal/core"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

// runtimeConfig builds the host config from the global flags, sized to the
// terminal when stdout is one.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Player = flagPlayer
	return cfg
}

// openStore opens the scores database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// modeID resolves a mode argument ("campaign", "endless" or a registry ID).
func modeID(arg string) string {
	switch arg {
	case "", "campaign":
		return "onet"
	case "endless":
		return "onet_endless"
	default:
		return arg
	}
}
