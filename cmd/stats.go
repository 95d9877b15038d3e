package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-category mastery",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		out := cmd.OutOrStdout()
		b := engine.Bank()
		fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("第%s章 %s", b.ChapterNumber, b.Title)))

		for _, s := range engine.Summaries() {
			bar := masteryBar(s.Percentage)
			line := fmt.Sprintf("%-24s %s %3d%%  習得 %d/%d", s.Title, bar, s.Percentage, s.MasteredCount, s.QuestionCount)
			if s.Percentage >= 100 {
				fmt.Fprintln(out, masteredStyle.Render(line))
			} else {
				fmt.Fprintln(out, categoryStyle.Render(line))
			}
			if s.LastPlayed != "" {
				if t, err := time.Parse(time.RFC3339, s.LastPlayed); err == nil {
					fmt.Fprintln(out, dimStyle.Render("    最終学習: "+t.Local().Format("2006-01-02 15:04")))
				}
			}
		}
		return nil
	},
}

// masteryBar renders a 10-cell progress bar for a 0-100 percentage.
func masteryBar(pct int) string {
	filled := pct / 10
	if filled > 10 {
		filled = 10
	}
	return "[" + strings.Repeat("■", filled) + strings.Repeat("·", 10-filled) + "]"
}
