package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ichimon-app/ichimon/internal/mastery"
	"github.com/ichimon-app/ichimon/internal/quizgen"
	"github.com/ichimon-app/ichimon/internal/session"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play a four-option multiple-choice quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		count, _ := cmd.Flags().GetInt("count")

		p := &player{
			engine: engine,
			in:     bufio.NewScanner(os.Stdin),
			out:    cmd.OutOrStdout(),
		}

		mgr := engine.Session()
		if quit := p.selectCategories(mgr); quit {
			return nil
		}
		if err := engine.BuildPool(); err != nil {
			if errors.Is(err, session.ErrEmptyPool) {
				fmt.Fprintln(p.out, dimStyle.Render("問題が見つかりませんでした。"))
				return nil
			}
			return err
		}

		items := engine.GenerateQuiz(mgr.Pool(), count)
		score := 0
		for i, item := range items {
			fmt.Fprintln(p.out)
			fmt.Fprintln(p.out, dimStyle.Render(fmt.Sprintf("Q%d/%d", i+1, len(items))))
			fmt.Fprintln(p.out, categoryStyle.Render(item.Question))
			for j, o := range item.Options {
				fmt.Fprintln(p.out, categoryStyle.Render(fmt.Sprintf("  %d. %s", j+1, o)))
			}

			correct := askOption(p, item)
			outcome := mastery.OutcomeUnknown
			if correct {
				score++
				outcome = mastery.OutcomeKnown
				fmt.Fprintln(p.out, correctStyle.Render("正解！"))
			} else {
				fmt.Fprintln(p.out, wrongStyle.Render("不正解 — 正答: "+item.CorrectAnswer))
			}
			engine.Mark(context.Background(), item.Question, outcome)
		}

		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, titleStyle.Render(fmt.Sprintf("スコア %d / %d", score, len(items))))
		return nil
	},
}

func askOption(p *player, item quizgen.Item) bool {
	for {
		input, ok := p.prompt("答え (1-4) > ")
		if !ok {
			return false
		}
		idx, err := strconv.Atoi(input)
		if err != nil || idx < 1 || idx > len(item.Options) {
			continue
		}
		return item.Options[idx-1] == item.CorrectAnswer
	}
}

func init() {
	quizCmd.Flags().Int("count", 10, "Number of questions per quiz")
}
