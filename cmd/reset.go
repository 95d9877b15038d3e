package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ichimon-app/ichimon/internal/mastery"
	"github.com/ichimon-app/ichimon/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase all study history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			fmt.Fprint(cmd.OutOrStdout(), "学習履歴をすべて消去します。よろしいですか? (yes/no) > ")
			sc := bufio.NewScanner(os.Stdin)
			if !sc.Scan() || strings.TrimSpace(sc.Text()) != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "中止しました。")
				return nil
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		st.HistoryRepo(newLogger()).Save(context.Background(), mastery.HistoryStore{})
		fmt.Fprintln(cmd.OutOrStdout(), "学習履歴を消去しました。")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation prompt")
}
