package session

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/ichimon-app/ichimon/internal/bank"
)

// Pool is one shuffled play-through of a question set. Base keeps the
// pre-shuffle order so "retry all" can reshuffle from a stable set rather
// than compounding shuffles across attempts.
type Pool struct {
	ID    string
	Base  []bank.Question
	Order []bank.Question
}

// Start creates a session pool: an independent uniform shuffle of the
// given questions under a fresh session ID.
func Start(pool []bank.Question, rng *rand.Rand) *Pool {
	base := make([]bank.Question, len(pool))
	copy(base, pool)

	order := make([]bank.Question, len(pool))
	copy(order, pool)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	return &Pool{
		ID:    uuid.NewString(),
		Base:  base,
		Order: order,
	}
}

// Len returns the number of questions in the session.
func (p *Pool) Len() int {
	return len(p.Order)
}

// Result summarizes a finished session.
type Result struct {
	KnownCount int
	// WrongPool holds the questions marked unknown, in session order.
	WrongPool []bank.Question
}

// Complete scores the session against the set of question texts the player
// marked unknown.
func (p *Pool) Complete(unknownQuestionTexts []string) Result {
	unknown := make(map[string]bool, len(unknownQuestionTexts))
	for _, q := range unknownQuestionTexts {
		unknown[q] = true
	}

	var wrong []bank.Question
	for _, q := range p.Order {
		if unknown[q.Q] {
			wrong = append(wrong, q)
		}
	}

	return Result{
		KnownCount: len(p.Order) - len(unknownQuestionTexts),
		WrongPool:  wrong,
	}
}
