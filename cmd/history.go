package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/bokibattle/internal/battle"
	"github.com/abhisek/bokibattle/internal/store"
	"github.com/abhisek/bokibattle/internal/ui/layout"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent runs, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		if difficulty != "" {
			if _, err := battle.DifficultyFor(battle.Level(difficulty)); err != nil {
				return err
			}
		}

		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		runs, err := st.RunRepo().Recent(cmd.Context(), store.RecentOpts{Limit: limit, Difficulty: difficulty})
		if err != nil {
			return fmt.Errorf("query runs: %w", err)
		}
		if len(runs) == 0 {
			fmt.Println("No runs recorded yet.")
			return nil
		}

		fmt.Printf("%-16s  %-8s  %10s  %5s  %8s  %-9s  %s\n",
			"Date", "Level", "Score", "Q", "Monsters", "Outcome", "Player")
		fmt.Println(strings.Repeat("─", 80))
		for _, r := range runs {
			fmt.Printf("%-16s  %-8s  %10s  %5d  %8d  %-9s  %s (%s)\n",
				r.Date.Local().Format("2006-01-02 15:04"),
				r.Difficulty,
				layout.Number(r.Score),
				r.QuestionsAnswered,
				r.MonstersDefeated,
				r.Outcome,
				r.PlayerName,
				r.Prefecture,
			)
		}
		return nil
	},
}

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Show the best score per difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, _, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		bests, err := st.RunRepo().BestScores(cmd.Context())
		if err != nil {
			return fmt.Errorf("query best scores: %w", err)
		}
		for _, d := range battle.Difficulties() {
			fmt.Printf("%-8s  %-4s  %10s\n", d.Level, d.Label, layout.Number(bests[string(d.Level)]))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of runs to show")
	historyCmd.Flags().StringP("difficulty", "d", "", "Filter by difficulty (easy, hard, practice)")
}
