package app

import (
	"context"
	"io"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ichimon-app/ichimon/internal/bank"
	"github.com/ichimon-app/ichimon/internal/mastery"
)

// memRepo is an in-memory HistoryRepo recording every save.
type memRepo struct {
	stored mastery.HistoryStore
	saves  int
}

func (m *memRepo) Load(_ context.Context) mastery.HistoryStore {
	if m.stored == nil {
		return mastery.HistoryStore{}
	}
	return m.stored
}

func (m *memRepo) Save(_ context.Context, h mastery.HistoryStore) {
	m.stored = h
	m.saves++
}

func testBank(t *testing.T) *bank.Bank {
	t.Helper()
	b, err := bank.Default()
	require.NoError(t, err)
	return b
}

func testEngine(t *testing.T, repo HistoryRepo) *Engine {
	t.Helper()
	return New(context.Background(), Options{
		Bank:   testBank(t),
		Repo:   repo,
		Logger: log.New(io.Discard),
		RNG:    rand.New(rand.NewPCG(1, 2)),
		Now:    func() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) },
	})
}

func TestEngine_MarkPersistsEveryUpdate(t *testing.T) {
	repo := &memRepo{}
	e := testEngine(t, repo)

	q := e.Bank().Categories[0].Questions[0]
	e.Mark(context.Background(), q.Q, mastery.OutcomeKnown)
	e.Mark(context.Background(), q.Q, mastery.OutcomeUnknown)

	assert.Equal(t, 2, repo.saves)
	stats := repo.stored[e.Bank().Categories[0].Title].QuestionStats[q.Q]
	require.NotNil(t, stats)
	assert.Equal(t, 0, stats.MasteryLevel)
	assert.Equal(t, 1, stats.Incorrect)
}

func TestEngine_MarkUnknownQuestionIsNoOp(t *testing.T) {
	repo := &memRepo{}
	e := testEngine(t, repo)

	before := e.History()
	after := e.Mark(context.Background(), "この問題は存在しない", mastery.OutcomeKnown)

	assert.Equal(t, 0, repo.saves)
	assert.Len(t, after, len(before))
}

func TestEngine_LoadsHistoryAtStartup(t *testing.T) {
	b := testBank(t)
	cat := b.Categories[0]
	q := cat.Questions[0]

	seeded := mastery.RecordOutcome(mastery.HistoryStore{}, cat.Title, q.Q, mastery.OutcomeKnown, time.Now())
	repo := &memRepo{stored: seeded}

	e := testEngine(t, repo)
	assert.Equal(t, 1, e.History()[cat.Title].QuestionStats[q.Q].MasteryLevel)
}

func TestEngine_GenerateQuiz(t *testing.T) {
	e := testEngine(t, &memRepo{})
	pool := e.Bank().Categories[0].Questions

	items := e.GenerateQuiz(pool, 5)
	require.Len(t, items, 5)
	for _, it := range items {
		assert.Len(t, it.Options, 4)
		assert.Contains(t, it.Options, it.CorrectAnswer)
	}
}

func TestEngine_SummariesFollowMarks(t *testing.T) {
	e := testEngine(t, &memRepo{})
	cat := e.Bank().Categories[0]

	sums := e.Summaries()
	require.Len(t, sums, len(e.Bank().Categories))
	assert.Equal(t, 0, sums[0].MasteredCount)
	assert.Equal(t, 0, sums[0].Percentage)
	assert.Empty(t, sums[0].LastPlayed)

	q := cat.Questions[0]
	for i := 0; i < mastery.Threshold; i++ {
		e.Mark(context.Background(), q.Q, mastery.OutcomeKnown)
	}

	sums = e.Summaries()
	assert.Equal(t, 1, sums[0].MasteredCount)
	assert.Greater(t, sums[0].Percentage, 0)
	assert.Equal(t, "2026-05-01T12:00:00Z", sums[0].LastPlayed)
}

func TestEngine_FullSessionFlow(t *testing.T) {
	e := testEngine(t, &memRepo{})
	mgr := e.Session()

	cat := e.Bank().Categories[0]
	require.NoError(t, mgr.ToggleCategory(cat.Title))
	require.NoError(t, e.BuildPool())
	require.NoError(t, mgr.ChooseBlock(0))

	p, err := mgr.StartSession()
	require.NoError(t, err)

	var unknown []string
	for i, q := range p.Order {
		outcome := mastery.OutcomeKnown
		if i%2 == 1 {
			outcome = mastery.OutcomeUnknown
			unknown = append(unknown, q.Q)
		}
		e.Mark(context.Background(), q.Q, outcome)
	}

	res, err := mgr.CompleteSession(unknown)
	require.NoError(t, err)
	assert.Equal(t, p.Len()-len(unknown), res.KnownCount)
	assert.Len(t, res.WrongPool, len(unknown))

	retry, err := mgr.RetryWrong()
	require.NoError(t, err)
	assert.Equal(t, len(unknown), retry.Len())
}
