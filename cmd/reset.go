package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/norlearn/internal/progress"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all progress and start fresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := viperForCmd(cmd)
		setupLogging(v)

		statePath, err := resolveStatePath(v)
		if err != nil {
			return fmt.Errorf("resolve progress path: %w", err)
		}

		if !v.GetBool("force") {
			fmt.Printf("This erases all progress in %s. Type 'yes' to confirm: ", statePath)
			line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
			if strings.TrimSpace(strings.ToLower(line)) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		store, err := progress.NewStore(statePath)
		if err != nil {
			return fmt.Errorf("open progress store: %w", err)
		}
		if err := store.Delete(); err != nil {
			return fmt.Errorf("delete progress: %w", err)
		}

		if journalPath, err := resolveJournalPath(v); err == nil {
			if err := os.Remove(journalPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("delete journal: %w", err)
			}
		}

		fmt.Println("Progress reset. Run 'norlearn' to start over.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
