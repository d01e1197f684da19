package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-reactor/internal/config"
	"github.com/vovakirdan/tui-reactor/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the top runs for the --difficulty preset, or for every
preset with --all.

Examples:
  reactor scores
  reactor scores --difficulty hard
  reactor scores --all --limit 20
  reactor scores --difficulty easy --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show runs of every difficulty")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the selected runs instead of listing them")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	difficulty := string(app.difficulty)
	title := difficulty
	if flagScoresAll {
		difficulty = ""
		title = "all difficulties"
	}

	if flagScoresClear {
		if err := store.ClearRuns(difficulty); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return nil
	}

	runs, err := store.TopRuns(difficulty, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'reactor play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-9s  %-7s  %s\n", "Rank", "Score", "Level", "Rounds", "Result", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-6s  %-9s  %-7s  %s\n", "----", "-----", "-----", "------", "------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-6d  %-9s  %-7s  %s\n",
			i+1, r.Score, r.LevelReached, r.Rounds, r.Outcome, r.Difficulty,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if flagScoresAll {
		all, err := store.AllStats()
		if err != nil {
			return err
		}
		for _, p := range config.Presets {
			if st, ok := all[string(p)]; ok {
				printStats(string(p), st)
			}
		}
		return nil
	}
	st, err := store.Stats(difficulty)
	if err != nil {
		return err
	}
	printStats(difficulty, st)
	return nil
}

func printStats(name string, st *storage.RunStats) {
	fmt.Printf("%-7s runs %d, victories %d, best %d, average %.0f, furthest level %d\n",
		name, st.Runs, st.Victories, st.HighScore, st.AvgScore, st.BestLevel)
}
