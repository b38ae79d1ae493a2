package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-onet/internal/registry"
	"github.com/vovakirdan/tui-onet/internal/storage"
)

var (
	flagScoresLimit   int
	flagScoresPlayers bool
	flagScoresRun     string
	flagScoresClear   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores",
	Long: `Display the top runs for a mode, the best run of each player, or a
single run by its ID.

Examples:
  onet scores
  onet scores endless --limit 20
  onet scores --players
  onet scores --player ann
  onet scores --run 3f0c...
  onet scores endless --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rows to show")
	scoresCmd.Flags().BoolVar(&flagScoresPlayers, "players", false, "Show the best run of each player")
	scoresCmd.Flags().StringVar(&flagScoresRun, "run", "", "Show a single run by ID")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every saved run of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = store.ClearScores(gameID)
		if err == nil {
			fmt.Printf("Cleared scores for %s.\n", registry.Title(gameID))
		}
	case flagScoresRun != "":
		err = printRun(store, flagScoresRun)
	case flagScoresPlayers:
		err = printPlayers(store, gameID)
	default:
		// --player is persistent and defaults to $USER, so only an
		// explicit value narrows the listing.
		player := ""
		if cmd.Flags().Changed("player") {
			player = flagPlayer
		}
		err = printTop(store, gameID, player)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printTop(store *storage.Store, gameID, player string) error {
	scores, err := topScores(store, gameID, player)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", registry.Title(gameID))

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'onet play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-14s  %-8d  %-5d  %s\n",
			i+1, displayPlayer(e.Player), e.Score, e.Level, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if player != "" {
		best, err := store.PlayerHighScore(gameID, player)
		if err == nil {
			fmt.Printf("Best for %s: %d\n", player, best)
		}
		return nil
	}
	if best, err := store.HighScore(gameID); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	return nil
}

// topScores returns the best runs of the mode, narrowed to one player when
// player is set. The limit applies after the filter.
func topScores(store *storage.Store, gameID, player string) ([]storage.ScoreEntry, error) {
	if player == "" {
		return store.TopScores(gameID, flagScoresLimit)
	}
	all, err := store.AllScores(gameID)
	if err != nil {
		return nil, err
	}
	var mine []storage.ScoreEntry
	for _, e := range all {
		if e.Player == player && len(mine) < flagScoresLimit {
			mine = append(mine, e)
		}
	}
	return mine, nil
}

func printPlayers(store *storage.Store, gameID string) error {
	players, err := store.Leaderboard(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best Players - %s\n\n", registry.Title(gameID))
	if len(players) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %s\n", "Rank", "Player", "Best", "Level", "Runs")
	fmt.Printf("  %-4s  %-14s  %-8s  %-5s  %s\n", "----", "------", "----", "-----", "----")
	for i, p := range players {
		fmt.Printf("  %-4d  %-14s  %-8d  %-5d  %d\n", i+1, displayPlayer(p.Player), p.Score, p.Level, p.Runs)
	}
	return nil
}

func printRun(store *storage.Store, runID string) error {
	e, err := store.ScoreByRun(runID)
	if err != nil {
		return err
	}
	if e == nil {
		fmt.Printf("No run with ID %s.\n", runID)
		return nil
	}

	fmt.Printf("Run %s\n", e.RunID)
	fmt.Printf("  Mode:   %s\n", registry.Title(e.GameID))
	fmt.Printf("  Player: %s\n", displayPlayer(e.Player))
	fmt.Printf("  Score:  %d\n", e.Score)
	fmt.Printf("  Level:  %d\n", e.Level)
	fmt.Printf("  Date:   %s\n", e.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}

func displayPlayer(p string) string {
	if p == "" {
		return "anonymous"
	}
	return p
}
