package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/norlearn/internal/journal"
	"github.com/abhisek/norlearn/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		setupLogging(v)

		cat, err := loadCatalog(v)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		statePath, err := resolveStatePath(v)
		if err != nil {
			return fmt.Errorf("resolve progress path: %w", err)
		}
		store, err := progress.NewStore(statePath)
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}
		state, err := store.Load()
		if err != nil {
			return err
		}

		fmt.Printf("Lessons completed: %d/%d\n", len(state.LessonsCompleted), cat.TotalLessons())
		fmt.Printf("Sessions: %d  Total time: %.0f min\n", len(state.Sessions), state.TotalTimeMinutes)

		fmt.Println("\nModule mastery (best quiz score):")
		for _, m := range cat.Modules {
			fmt.Printf("  %-44s %3d%%  (%d attempts)\n",
				m.Title, state.Mastery[m.ID], len(state.QuizAttempts[m.ID]))
		}

		journalPath, err := resolveJournalPath(v)
		if err != nil {
			return nil
		}
		js, err := journal.Open(journalPath)
		if err != nil {
			// No journal yet is fine; progress stats above still stand.
			return nil
		}
		defer js.Close()

		ctx := cmd.Context()
		totals, err := js.CountTotals(ctx)
		if err != nil {
			return fmt.Errorf("journal totals: %w", err)
		}
		fmt.Printf("\nJournal: %d answers, %d quizzes, %d sessions\n",
			totals.Answers, totals.Quizzes, totals.Sessions)

		accs, err := js.ModuleAccuracies(ctx)
		if err != nil {
			return fmt.Errorf("journal accuracies: %w", err)
		}
		if len(accs) > 0 {
			fmt.Println("\nAnswer accuracy by module:")
			for _, a := range accs {
				title := a.ModuleID
				if m, ok := cat.Module(a.ModuleID); ok {
					title = m.Title
				}
				fmt.Printf("  %-44s %3.0f%%  (%d answered)\n", title, 100*a.Accuracy(), a.Answered)
			}
		}

		sessions, err := js.RecentSessions(ctx, 5)
		if err != nil {
			return fmt.Errorf("journal sessions: %w", err)
		}
		if len(sessions) > 0 {
			fmt.Println("\nRecent sessions:")
			for _, s := range sessions {
				fmt.Printf("  %s  %.1f min\n", s.StartedAt.Local().Format("2006-01-02 15:04"), s.DurationMinutes)
			}
		}
		return nil
	},
}
