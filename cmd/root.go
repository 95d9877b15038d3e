package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ichimon-app/ichimon/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "ichimon",
	Short: "World-history one-question-one-answer trainer",
	Long:  "Ichimon — terminal flashcard and quiz trainer that tracks per-question mastery and focuses study on weak spots.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Optional .env for ICHIMON_DB and friends; absence is fine.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ICHIMON_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to a question bank JSON file (default: embedded bank)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then ICHIMON_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
