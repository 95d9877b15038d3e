package session

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/ichimon-app/ichimon/internal/bank"
	"github.com/ichimon-app/ichimon/internal/mastery"
)

var (
	// ErrNoSelection is returned when a pool is requested with no
	// categories selected.
	ErrNoSelection = errors.New("no categories selected")
	// ErrEmptyPool is returned when the selection yields no questions,
	// e.g. weakness mode over fully mastered categories.
	ErrEmptyPool = errors.New("no questions in pool")
	// ErrNoWrongAnswers is returned by RetryWrong after a perfect session.
	ErrNoWrongAnswers = errors.New("no wrong answers to retry")
)

// Manager drives the session lifecycle:
//
//	idle → category-selected → pool-built → block-chosen → in-session
//	     → completed → (retry → in-session | back → idle)
//
// Back returns to idle from any state. Out-of-order operations fail with
// a transition error rather than corrupting session state.
type Manager struct {
	cats []bank.Category
	rng  *rand.Rand

	state    State
	mode     Mode
	selected map[string]bool

	pendingPool   []bank.Question
	originalBlock []bank.Question
	active        *Pool
	lastResult    *Result
}

// NewManager creates a Manager over the bank's categories. A nil rng falls
// back to a time-seeded source.
func NewManager(cats []bank.Category, rng *rand.Rand) *Manager {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return &Manager{
		cats:     cats,
		rng:      rng,
		state:    StateIdle,
		mode:     ModeNormal,
		selected: make(map[string]bool),
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State { return m.state }

// Mode returns the current study mode.
func (m *Manager) Mode() Mode { return m.mode }

// SetMode switches between normal and weakness study. Only allowed before
// a pool has been built.
func (m *Manager) SetMode(mode Mode) error {
	if m.state != StateIdle && m.state != StateCategorySelected {
		return m.transitionErr("set mode")
	}
	m.mode = mode
	return nil
}

// ToggleCategory flips a category's selection.
func (m *Manager) ToggleCategory(title string) error {
	if m.state != StateIdle && m.state != StateCategorySelected {
		return m.transitionErr("toggle category")
	}
	if m.selected[title] {
		delete(m.selected, title)
	} else {
		m.selected[title] = true
	}
	m.syncSelectionState()
	return nil
}

// SelectAll selects every category; if all are already selected it clears
// the selection instead.
func (m *Manager) SelectAll() error {
	if m.state != StateIdle && m.state != StateCategorySelected {
		return m.transitionErr("select all")
	}
	all := true
	for _, c := range m.cats {
		if !m.selected[c.Title] {
			all = false
			break
		}
	}
	if all {
		m.selected = make(map[string]bool)
	} else {
		for _, c := range m.cats {
			m.selected[c.Title] = true
		}
	}
	m.syncSelectionState()
	return nil
}

// Selected returns the selected category titles in bank order.
func (m *Manager) Selected() []string {
	var out []string
	for _, c := range m.cats {
		if m.selected[c.Title] {
			out = append(out, c.Title)
		}
	}
	return out
}

// BuildPool assembles the candidate pool from the current selection and
// mode, moving the session to pool-built.
func (m *Manager) BuildPool(h mastery.HistoryStore) error {
	if m.state != StateCategorySelected {
		if m.state == StateIdle {
			return ErrNoSelection
		}
		return m.transitionErr("build pool")
	}

	pool := BuildPool(m.Selected(), m.mode, m.cats, h)
	if len(pool) == 0 {
		return ErrEmptyPool
	}

	m.pendingPool = pool
	m.state = StatePoolBuilt
	return nil
}

// Pool returns the candidate pool built by BuildPool.
func (m *Manager) Pool() []bank.Question { return m.pendingPool }

// Blocks partitions the candidate pool with the default block size.
func (m *Manager) Blocks() [][]bank.Question {
	return PartitionIntoBlocks(m.pendingPool, DefaultBlockSize)
}

// ChooseBlock picks one block as the session's base set.
func (m *Manager) ChooseBlock(index int) error {
	if m.state != StatePoolBuilt {
		return m.transitionErr("choose block")
	}
	blocks := m.Blocks()
	if index < 0 || index >= len(blocks) {
		return fmt.Errorf("block %d out of range [0, %d)", index, len(blocks))
	}
	m.originalBlock = blocks[index]
	m.state = StateBlockChosen
	return nil
}

// ChooseAll takes the whole candidate pool as the session's base set.
func (m *Manager) ChooseAll() error {
	if m.state != StatePoolBuilt {
		return m.transitionErr("choose all")
	}
	m.originalBlock = m.pendingPool
	m.state = StateBlockChosen
	return nil
}

// StartSession shuffles the chosen base set and enters in-session.
func (m *Manager) StartSession() (*Pool, error) {
	if m.state != StateBlockChosen {
		return nil, m.transitionErr("start session")
	}
	m.active = Start(m.originalBlock, m.rng)
	m.lastResult = nil
	m.state = StateInSession
	return m.active, nil
}

// Active returns the in-flight session pool, or nil.
func (m *Manager) Active() *Pool { return m.active }

// CompleteSession scores the active session and enters completed.
func (m *Manager) CompleteSession(unknownQuestionTexts []string) (Result, error) {
	if m.state != StateInSession {
		return Result{}, m.transitionErr("complete session")
	}
	res := m.active.Complete(unknownQuestionTexts)
	m.lastResult = &res
	m.state = StateCompleted
	return res, nil
}

// LastResult returns the most recent session result, or nil.
func (m *Manager) LastResult() *Result { return m.lastResult }

// RetryWrong replays only the questions missed in the last session,
// freshly shuffled.
func (m *Manager) RetryWrong() (*Pool, error) {
	if m.state != StateCompleted {
		return nil, m.transitionErr("retry wrong")
	}
	if m.lastResult == nil || len(m.lastResult.WrongPool) == 0 {
		return nil, ErrNoWrongAnswers
	}
	m.active = Start(m.lastResult.WrongPool, m.rng)
	m.state = StateInSession
	return m.active, nil
}

// RetryAll replays the original block, reshuffled from its pre-shuffle
// order so repeated retries never compound earlier shuffles.
func (m *Manager) RetryAll() (*Pool, error) {
	if m.state != StateCompleted {
		return nil, m.transitionErr("retry all")
	}
	m.active = Start(m.originalBlock, m.rng)
	m.state = StateInSession
	return m.active, nil
}

// Back abandons the session from any state and returns to idle. The
// category selection and mode survive; per-session state does not.
func (m *Manager) Back() {
	m.pendingPool = nil
	m.originalBlock = nil
	m.active = nil
	m.lastResult = nil
	m.syncSelectionState()
}

func (m *Manager) syncSelectionState() {
	if len(m.selected) > 0 {
		m.state = StateCategorySelected
	} else {
		m.state = StateIdle
	}
}

func (m *Manager) transitionErr(op string) error {
	return fmt.Errorf("cannot %s in state %s", op, m.state)
}
