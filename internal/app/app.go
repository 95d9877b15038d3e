// Package app wires the question bank, quiz generator, mastery tracker,
// session manager, and history store into one engine the presentation
// layer drives through plain method calls.
package app

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ichimon-app/ichimon/internal/bank"
	"github.com/ichimon-app/ichimon/internal/mastery"
	"github.com/ichimon-app/ichimon/internal/quizgen"
	"github.com/ichimon-app/ichimon/internal/session"
	"github.com/ichimon-app/ichimon/internal/store"
)

// HistoryRepo is the persistence surface the engine needs. Satisfied by
// *store.HistoryRepo; tests substitute an in-memory implementation.
type HistoryRepo interface {
	Load(ctx context.Context) mastery.HistoryStore
	Save(ctx context.Context, h mastery.HistoryStore)
}

// Options configures a new Engine.
type Options struct {
	Bank   *bank.Bank
	Repo   HistoryRepo
	Logger *log.Logger
	// RNG drives session shuffles and quiz generation. Nil means a
	// time-seeded source.
	RNG *rand.Rand
	// Now supplies mark timestamps. Nil means time.Now.
	Now func() time.Time
}

// Engine is the in-process API for one study process. History reads
// happen once at startup; every recorded mark rewrites the whole blob.
type Engine struct {
	bank    *bank.Bank
	repo    HistoryRepo
	logger  *log.Logger
	now     func() time.Time
	gen     *quizgen.Generator
	manager *session.Manager
	history mastery.HistoryStore
}

// New creates an Engine and loads the persisted history.
func New(ctx context.Context, opts Options) *Engine {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	e := &Engine{
		bank:    opts.Bank,
		repo:    opts.Repo,
		logger:  logger,
		now:     now,
		gen:     quizgen.New(opts.RNG),
		manager: session.NewManager(opts.Bank.Categories, opts.RNG),
		history: mastery.HistoryStore{},
	}
	if e.repo != nil {
		e.history = e.repo.Load(ctx)
	}
	return e
}

// Bank returns the loaded question bank.
func (e *Engine) Bank() *bank.Bank { return e.bank }

// Session returns the session lifecycle manager.
func (e *Engine) Session() *session.Manager { return e.manager }

// History returns the current history store value.
func (e *Engine) History() mastery.HistoryStore { return e.history }

// Mark records a known/unknown outcome for a question and persists the
// updated history. A question text not found in any category is dropped
// silently: the history is returned unchanged.
func (e *Engine) Mark(ctx context.Context, questionText string, outcome mastery.Outcome) mastery.HistoryStore {
	cat := e.bank.CategoryForQuestion(questionText)
	if cat == nil {
		e.logger.Debug("mark for unknown question dropped", "question", questionText)
		return e.history
	}

	e.history = mastery.RecordOutcome(e.history, cat.Title, questionText, outcome, e.now())
	if e.repo != nil {
		e.repo.Save(ctx, e.history)
	}
	return e.history
}

// BuildPool builds the candidate pool for the current selection and mode
// against the engine's history.
func (e *Engine) BuildPool() error {
	return e.manager.BuildPool(e.history)
}

// GenerateQuiz builds up to count multiple-choice items from the given
// question pool, drawing distractors from the bank's full answer universe.
func (e *Engine) GenerateQuiz(pool []bank.Question, count int) []quizgen.Item {
	return e.gen.Generate(pool, e.bank.AllAnswers(), count)
}

// CategorySummary is the per-category line on the stats surface.
type CategorySummary struct {
	Title         string
	QuestionCount int
	MasteredCount int
	Percentage    int
	LastPlayed    string
}

// Summaries reports mastery aggregates for every category in bank order.
func (e *Engine) Summaries() []CategorySummary {
	out := make([]CategorySummary, 0, len(e.bank.Categories))
	for _, cat := range e.bank.Categories {
		ch := e.history[cat.Title]
		out = append(out, CategorySummary{
			Title:         cat.Title,
			QuestionCount: len(cat.Questions),
			MasteredCount: mastery.MasteredCount(ch),
			Percentage:    mastery.Percentage(cat, ch),
			LastPlayed:    lastPlayed(ch),
		})
	}
	return out
}

func lastPlayed(ch *mastery.CategoryHistory) string {
	if ch == nil {
		return ""
	}
	return ch.LastPlayed
}

// compile-time check that the SQLite repo satisfies the engine's surface.
var _ HistoryRepo = (*store.HistoryRepo)(nil)
