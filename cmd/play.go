package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ichimon-app/ichimon/internal/app"
	"github.com/ichimon-app/ichimon/internal/mastery"
	"github.com/ichimon-app/ichimon/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a flashcard study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, st, err := openEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		p := &player{
			engine: engine,
			in:     bufio.NewScanner(os.Stdin),
			out:    cmd.OutOrStdout(),
		}
		return p.run()
	},
}

// player drives the interactive flashcard flow over stdin/stdout.
type player struct {
	engine *app.Engine
	in     *bufio.Scanner
	out    io.Writer
}

func (p *player) run() error {
	b := p.engine.Bank()
	fmt.Fprintln(p.out, titleStyle.Render(fmt.Sprintf("第%s章 %s", b.ChapterNumber, b.Title)))
	fmt.Fprintln(p.out, dimStyle.Render(b.Description))

	for {
		again, err := p.selectAndPlay()
		if err != nil || !again {
			return err
		}
	}
}

// selectAndPlay walks one full pass of the lifecycle: category selection,
// block choice, session, results with retries. Returns false to quit.
func (p *player) selectAndPlay() (bool, error) {
	mgr := p.engine.Session()

	if quit := p.selectCategories(mgr); quit {
		return false, nil
	}

	if err := p.engine.BuildPool(); err != nil {
		switch {
		case errors.Is(err, session.ErrEmptyPool):
			if mgr.Mode() == session.ModeWeakness {
				fmt.Fprintln(p.out, masteredStyle.Render("未習得の問題はありません。素晴らしい！"))
			} else {
				fmt.Fprintln(p.out, dimStyle.Render("問題が見つかりませんでした。"))
			}
			mgr.Back()
			return true, nil
		default:
			return false, err
		}
	}

	if quit := p.chooseBlock(mgr); quit {
		mgr.Back()
		return true, nil
	}

	pool, err := mgr.StartSession()
	if err != nil {
		return false, err
	}

	for {
		unknown := p.playSession(pool)
		res, err := mgr.CompleteSession(unknown)
		if err != nil {
			return false, err
		}

		switch p.showResults(pool, res) {
		case "r":
			if pool, err = mgr.RetryWrong(); err != nil {
				return false, err
			}
		case "a":
			if pool, err = mgr.RetryAll(); err != nil {
				return false, err
			}
		case "b":
			mgr.Back()
			return true, nil
		default:
			return false, nil
		}
	}
}

func (p *player) selectCategories(mgr *session.Manager) (quit bool) {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, titleStyle.Render("カテゴリ選択"))
		selected := make(map[string]bool)
		for _, t := range mgr.Selected() {
			selected[t] = true
		}
		for i, s := range p.engine.Summaries() {
			marker := "[ ]"
			if selected[s.Title] {
				marker = "[x]"
			}
			line := fmt.Sprintf("%s %2d. %s (%d問)", marker, i+1, s.Title, s.QuestionCount)
			detail := fmt.Sprintf("  習得 %d / %d問 (%d%%)", s.MasteredCount, s.QuestionCount, s.Percentage)
			fmt.Fprintln(p.out, categoryStyle.Render(line)+dimStyle.Render(detail))
		}
		mode := "通常"
		if mgr.Mode() == session.ModeWeakness {
			mode = "弱点"
		}
		fmt.Fprintln(p.out, dimStyle.Render(fmt.Sprintf("モード: %s — 番号で選択, a=全選択, m=モード切替, s=開始, q=終了", mode)))

		input, ok := p.prompt("> ")
		if !ok {
			return true
		}
		switch input {
		case "q":
			return true
		case "a":
			mgr.SelectAll()
		case "m":
			next := session.ModeWeakness
			if mgr.Mode() == session.ModeWeakness {
				next = session.ModeNormal
			}
			mgr.SetMode(next)
		case "s":
			if len(mgr.Selected()) == 0 {
				fmt.Fprintln(p.out, dimStyle.Render("カテゴリを選択してください。"))
				continue
			}
			return false
		default:
			idx, err := strconv.Atoi(input)
			if err != nil || idx < 1 || idx > len(p.engine.Bank().Categories) {
				continue
			}
			mgr.ToggleCategory(p.engine.Bank().Categories[idx-1].Title)
		}
	}
}

func (p *player) chooseBlock(mgr *session.Manager) (quit bool) {
	blocks := mgr.Blocks()
	total := len(mgr.Pool())

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, titleStyle.Render("出題範囲"))
	fmt.Fprintln(p.out, categoryStyle.Render(fmt.Sprintf(" 0. 全問 (%d問)", total)))
	start := 1
	for i, blk := range blocks {
		fmt.Fprintln(p.out, categoryStyle.Render(
			fmt.Sprintf("%2d. 第%d問〜第%d問", i+1, start, start+len(blk)-1)))
		start += len(blk)
	}

	for {
		input, ok := p.prompt("番号 (q=戻る) > ")
		if !ok || input == "q" {
			return true
		}
		idx, err := strconv.Atoi(input)
		if err != nil {
			continue
		}
		if idx == 0 {
			mgr.ChooseAll()
			return false
		}
		if err := mgr.ChooseBlock(idx - 1); err == nil {
			return false
		}
	}
}

// playSession runs through a shuffled pool one card at a time, records
// each mark, and returns the question texts marked unknown.
func (p *player) playSession(pool *session.Pool) []string {
	var unknown []string
	for i, q := range pool.Order {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, dimStyle.Render(fmt.Sprintf("Q%d/%d", i+1, pool.Len())))
		fmt.Fprintln(p.out, categoryStyle.Render(q.Q))
		p.prompt("Enterで答えを表示 ")
		fmt.Fprintln(p.out, titleStyle.Render(q.A))

		input, ok := p.prompt("わかった? (y/n) > ")
		outcome := mastery.OutcomeKnown
		if !ok || strings.ToLower(input) != "y" {
			outcome = mastery.OutcomeUnknown
			unknown = append(unknown, q.Q)
		}
		p.engine.Mark(context.Background(), q.Q, outcome)
	}
	return unknown
}

func (p *player) showResults(pool *session.Pool, res session.Result) string {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, titleStyle.Render("結果"))
	fmt.Fprintln(p.out, correctStyle.Render(fmt.Sprintf("正解 %d / %d", res.KnownCount, pool.Len())))
	if len(res.WrongPool) > 0 {
		fmt.Fprintln(p.out, wrongStyle.Render(fmt.Sprintf("未習得 %d問:", len(res.WrongPool))))
		for _, q := range res.WrongPool {
			fmt.Fprintln(p.out, dimStyle.Render("  ・"+q.Q))
		}
	}

	opts := "a=全問リトライ, b=カテゴリ選択へ, q=終了"
	if len(res.WrongPool) > 0 {
		opts = "r=間違いのみリトライ, " + opts
	}
	for {
		input, ok := p.prompt(opts + " > ")
		if !ok {
			return "q"
		}
		switch input {
		case "r":
			if len(res.WrongPool) == 0 {
				continue
			}
			return "r"
		case "a", "b", "q":
			return input
		}
	}
}

// prompt prints the prompt and reads one trimmed line. ok is false on EOF.
func (p *player) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(p.out, dimStyle.Render(msg))
	if !p.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(p.in.Text()), true
}
