package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gros-nounours/internal/platform/tui"
	"github.com/vovakirdan/gros-nounours/internal/registry"
	"github.com/vovakirdan/gros-nounours/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [minigame]",
	Short: "Show run history",
	Long: `Without an argument, opens an interactive table of the best runs of
each minigame. With a minigame id, prints its top 10 completed runs.

Examples:
  nounours scores
  nounours scores traffic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, "", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	id := args[0]
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown minigame %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'nounours list' to see available minigames.")
		os.Exit(1)
	}

	runs, err := store.TopRuns(id, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Meilleures parties - %s\n", registry.Title(id))
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No completed runs yet.")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Coins", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, r.Coins,
			r.Duration.Round(100*time.Millisecond), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st, err := store.GetMinigameStats(id); err == nil {
		fmt.Println()
		fmt.Printf("Plays: %d  Completed: %d  Coins earned: %d\n", st.Plays, st.Completions, st.TotalCoins)
	}
}
