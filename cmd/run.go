package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/norlearn/internal/app"
	"github.com/abhisek/norlearn/internal/journal"
	"github.com/abhisek/norlearn/internal/progress"
	"github.com/abhisek/norlearn/internal/ui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a learning session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp loads the catalog and progress, opens the journal, and launches the
// interactive session.
func runApp(cmd *cobra.Command) error {
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

	// The journal is derived telemetry; failure to open it never blocks a
	// session.
	var rec journal.Recorder = journal.Nop{}
	if !v.GetBool("no-journal") {
		journalPath, err := resolveJournalPath(v)
		if err != nil {
			slog.Warn("resolve journal path", "error", err)
		} else if js, err := journal.Open(journalPath); err != nil {
			slog.Warn("open journal", "error", err)
		} else {
			defer js.Close()
			rec = js
		}
	}

	renderer := ui.NewTerminal(os.Stdin, os.Stdout, !v.GetBool("no-color"))

	return app.Run(app.Options{
		Catalog:  cat,
		Store:    store,
		Renderer: renderer,
		Recorder: rec,
		PageSize: v.GetInt("page-size"),
	})
}
