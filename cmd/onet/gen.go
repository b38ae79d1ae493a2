package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/config"
	engine "github.com/vovakirdan/tui-onet/internal/onet"
)

var (
	flagGenRows  int
	flagGenCols  int
	flagGenTypes int
	flagGenJSON  bool
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate a board and print it",
	Long: `Generate a board the way a new level is dealt and print it.
Rows, columns and tile types default to the config's board section.

Examples:
  onet gen
  onet gen --rows 6 --cols 8 --types 10 --seed 42
  onet gen --json`,
	Run: runGen,
}

func init() {
	genCmd.Flags().IntVar(&flagGenRows, "rows", 0, "Board rows (default from config)")
	genCmd.Flags().IntVar(&flagGenCols, "cols", 0, "Board columns (default from config)")
	genCmd.Flags().IntVar(&flagGenTypes, "types", 0, "Tile types (default from config)")
	genCmd.Flags().BoolVar(&flagGenJSON, "json", false, "Print the board as JSON")
}

// generatedBoard is the JSON form of a dealt board.
type generatedBoard struct {
	Rows      int             `json:"rows"`
	Cols      int             `json:"cols"`
	TileTypes int             `json:"tile_types"`
	Seed      int64           `json:"seed"`
	Tiles     [][]engine.Tile `json:"tiles"`
	Glyphs    []string        `json:"glyphs"`
	HasMoves  bool            `json:"has_moves"`
	Hint      *generatedMove  `json:"hint,omitempty"`
}

type generatedMove struct {
	A     engine.Point   `json:"a"`
	B     engine.Point   `json:"b"`
	Route []engine.Point `json:"route"` // Start, corners and end
	Turns int            `json:"turns"`
}

// boardFlags fills unset dimensions from the loaded config.
func boardFlags(cfg config.OnetConfig, rows, cols, types int) (int, int, int) {
	if rows <= 0 {
		rows = cfg.Board.Rows
	}
	if cols <= 0 {
		cols = cfg.Board.Cols
	}
	if types <= 0 {
		types = cfg.Board.TileTypes
	}
	return rows, cols, min(types, len(cfg.Display.Glyphs))
}

// loadConfig loads the game config from path with the difficulty preset
// applied. A missing or broken file falls back to the built-in config; an
// unknown preset is an error.
func loadConfig(path, difficulty string) (config.OnetConfig, config.Source, error) {
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return config.OnetConfig{}, "", err
	}

	cfg, src, err := config.Load(path)
	if err != nil {
		logger.Warn("using built-in config", "error", err)
		cfg, src = config.DefaultOnetConfig(), config.SourceBuiltin
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, src, nil
}

func newBoard(rows, cols, types int, seed int64) (*engine.Board, *generatedBoard, error) {
	b, err := engine.Generate(rows, cols, types, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, nil, err
	}

	out := &generatedBoard{
		Rows:      rows,
		Cols:      cols,
		TileTypes: types,
		Seed:      seed,
		Tiles:     b.Snapshot(),
	}
	if m, ok := engine.FindMove(b); ok {
		out.HasMoves = true
		out.Hint = &generatedMove{A: m.A, B: m.B, Route: m.Route.Corners(), Turns: m.Route.Turns()}
	}
	return b, out, nil
}

func runGen(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rows, cols, types := boardFlags(cfg, flagGenRows, flagGenCols, flagGenTypes)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	b, out, err := newBoard(rows, cols, types, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating board: %v\n", err)
		os.Exit(1)
	}
	out.Glyphs = cfg.Display.Glyphs[:types]

	if flagGenJSON {
		s, err := sonic.MarshalString(out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding board: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(s)
		return
	}

	catalog := engine.NewCatalog(cfg.Display.Glyphs...)
	fmt.Printf("Board %dx%d, %d types, seed %d\n\n", rows, cols, types, seed)
	for r := range b.Rows() {
		cells := make([]string, b.Cols())
		for c := range b.Cols() {
			cells[c] = catalog.ID(b.At(engine.P(r, c)))
		}
		fmt.Println("  " + strings.Join(cells, " "))
	}

	fmt.Println()
	if out.Hint != nil {
		fmt.Printf("First move: %s - %s (%d turns)\n", out.Hint.A, out.Hint.B, out.Hint.Turns)
	} else {
		fmt.Println("Dealt deadlocked: no moves.")
	}
}
