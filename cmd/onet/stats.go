package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	engine "github.com/vovakirdan/tui-onet/internal/onet"
	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

var (
	flagStatsBoards int
	flagStatsRows   int
	flagStatsCols   int
	flagStatsTypes  int
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Survey generated boards and stored runs",
	Long: `Deal many boards and report how often they start deadlocked and how
far a greedy player gets, then summarize the runs stored in the scores
database.

Examples:
  onet stats
  onet stats --boards 1000 --rows 8 --cols 12 --types 21`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsBoards, "boards", 200, "Number of boards to deal")
	statsCmd.Flags().IntVar(&flagStatsRows, "rows", 0, "Board rows (default from config)")
	statsCmd.Flags().IntVar(&flagStatsCols, "cols", 0, "Board columns (default from config)")
	statsCmd.Flags().IntVar(&flagStatsTypes, "types", 0, "Tile types (default from config)")
}

// surveyResult aggregates a batch of dealt boards.
type surveyResult struct {
	Boards     int
	Deadlocked int // No move on the fresh deal
	Cleared    int // Greedy play removed every tile
	Pairs      int // Pairs removed by greedy play, summed
}

// newBar creates the survey progress bar.
func newBar(n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        aurora.Yellow("█").String(),
			SaucerHead:    aurora.Yellow("█").String(),
			SaucerPadding: " ",
			BarStart:      "|",
			BarEnd:        "|",
		}),
	)
}

// survey deals n boards from consecutive seeds and plays each out greedily.
// step is called after every board.
func survey(n, rows, cols, types int, seed int64, step func()) (surveyResult, error) {
	res := surveyResult{Boards: n}
	for i := range n {
		b, err := engine.Generate(rows, cols, types, rand.New(rand.NewSource(seed+int64(i))))
		if err != nil {
			return res, err
		}
		if !engine.HasMoves(b) {
			res.Deadlocked++
		}
		res.Pairs += engine.PlayOut(b)
		if b.IsCleared() {
			res.Cleared++
		}
		if step != nil {
			step()
		}
	}
	return res, nil
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) * 100 / float64(total)
}

func runStats(_ *cobra.Command, _ []string) {
	cfg, _, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	rows, cols, types := boardFlags(cfg, flagStatsRows, flagStatsCols, flagStatsTypes)

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	n := max(flagStatsBoards, 1)

	bar := newBar(n, fmt.Sprintf("Dealing %dx%d/%d", rows, cols, types))
	res, err := survey(n, rows, cols, types, seed, func() {
		//nolint:errcheck // Progress output only
		bar.Add(1)
	})
	//nolint:errcheck // Progress output only
	bar.Finish()
	fmt.Fprintln(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating board: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Boards dealt:      %d (%dx%d, %d types, seeds from %d)\n", res.Boards, rows, cols, types, seed)
	fmt.Printf("Dealt deadlocked:  %d (%.1f%%)\n", res.Deadlocked, percent(res.Deadlocked, res.Boards))
	fmt.Printf("Greedy clears:     %d (%.1f%%)\n", res.Cleared, percent(res.Cleared, res.Boards))
	fmt.Printf("Avg pairs removed: %.1f of %d\n", float64(res.Pairs)/float64(res.Boards), rows*cols/2)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return
	}
	defer store.Close()

	fmt.Println()
	fmt.Println("Stored runs:")
	for _, g := range registry.List() {
		printGameStats(store, g)
	}
}

func printGameStats(store *storage.Store, g registry.GameInfo) {
	stats, err := store.GetGameStats(g.ID)
	if err != nil {
		logger.Warn("could not read stats", "game", g.ID, "error", err)
		return
	}
	if stats.GamesCount == 0 {
		fmt.Printf("  %-16s no runs yet\n", g.Title)
		return
	}
	fmt.Printf("  %-16s runs %d  best %d  avg %.0f  best level %d  last %s\n",
		g.Title, stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel,
		stats.LastPlayed.Format("2006-01-02 15:04"))
}
