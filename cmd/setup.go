package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ichimon-app/ichimon/internal/app"
	"github.com/ichimon-app/ichimon/internal/bank"
	"github.com/ichimon-app/ichimon/internal/store"
)

// newLogger builds the CLI logger; diagnostics go to stderr so they never
// interleave with the interactive prompts on stdout.
func newLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
}

// loadBank reads the bank named by --bank, or the embedded default.
func loadBank(cmd *cobra.Command) (*bank.Bank, error) {
	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return bank.Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	b, err := bank.Load(data)
	if err != nil {
		return nil, fmt.Errorf("load bank %s: %w", path, err)
	}
	return b, nil
}

// openEngine wires the full engine for a command invocation. The caller
// must close the returned store.
func openEngine(cmd *cobra.Command) (*app.Engine, *store.Store, error) {
	b, err := loadBank(cmd)
	if err != nil {
		return nil, nil, err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	logger := newLogger()
	engine := app.New(context.Background(), app.Options{
		Bank:   b,
		Repo:   st.HistoryRepo(logger),
		Logger: logger,
	})
	return engine, st, nil
}
