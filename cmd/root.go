package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abhisek/norlearn/internal/app"
	"github.com/abhisek/norlearn/internal/catalog"
	"github.com/abhisek/norlearn/internal/journal"
	"github.com/abhisek/norlearn/internal/progress"
)

var rootCmd = &cobra.Command{
	Use:   "norlearn",
	Short: "Daily learning sessions in your terminal",
	Long:  "Norlearn — terminal app for short daily learning sessions: lessons, quizzes, flashcards, and streaks.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("data", "", "Path to the progress file (overrides NORLEARN_DATA)")
	pf.String("journal", "", "Path to the activity journal (overrides NORLEARN_JOURNAL)")
	pf.String("catalog", "", "Path to a catalog JSON file (default: embedded curriculum)")
	pf.Int("page-size", app.DefaultPageSize, "Lines per page when reading lessons")
	pf.Bool("no-color", false, "Disable styled output")
	pf.Bool("no-journal", false, "Disable the SQLite activity journal")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// viperForCmd binds a command's flags and environment to a fresh viper
// instance, with an optional norlearn.{yaml,toml,json} config file.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("NORLEARN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("norlearn")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/norlearn")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("error reading config file", "error", err)
		}
	}

	return v
}

func setupLogging(v *viper.Viper) {
	var level slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// resolveStatePath returns the progress file path: --data flag, then the
// NORLEARN_DATA env var, then the default XDG path.
func resolveStatePath(v *viper.Viper) (string, error) {
	if p := v.GetString("data"); p != "" {
		return p, nil
	}
	return progress.DefaultStatePath()
}

func resolveJournalPath(v *viper.Viper) (string, error) {
	if p := v.GetString("journal"); p != "" {
		return p, nil
	}
	return journal.DefaultPath()
}

// loadCatalog parses the configured catalog file, or the embedded curriculum
// when none is given.
func loadCatalog(v *viper.Viper) (*catalog.Catalog, error) {
	if p := v.GetString("catalog"); p != "" {
		return catalog.LoadFile(p)
	}
	return catalog.Default()
}
