// Package quizgen turns question/answer pairs into four-option
// multiple-choice items. Wrong options are drawn preferentially from
// answers of the same semantic kind so they stay plausible.
package quizgen

import (
	"math/rand/v2"
	"time"

	"github.com/ichimon-app/ichimon/internal/bank"
	"github.com/ichimon-app/ichimon/internal/classify"
)

// OptionCount is the number of options per item, correct answer included.
const OptionCount = 4

// distractorCount is the number of wrong options per item.
const distractorCount = OptionCount - 1

// Item is one playable multiple-choice question. Derived, never persisted.
type Item struct {
	Question      string
	Options       []string
	CorrectAnswer string
}

// Generator builds quiz items from a question pool. The random source is
// injectable so shuffles and distractor sampling are reproducible under a
// fixed seed in tests.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator. A nil rng falls back to a time-seeded source.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1))
	}
	return &Generator{rng: rng}
}

// Generate selects min(count, len(questions)) questions at random and
// builds one Item per selection. Each item carries the correct answer and
// three distractors: same-kind answers when the kind's pool has at least
// three others, padded from the whole answer universe otherwise. Callers
// must supply an answer universe with at least OptionCount unique entries;
// bank.Load enforces that bound. Empty input yields an empty result.
func (g *Generator) Generate(questions []bank.Question, allAnswers []string, count int) []Item {
	if len(questions) == 0 || count <= 0 {
		return nil
	}

	pools := BuildPools(allAnswers)

	selected := shuffled(g.rng, questions)
	if count < len(selected) {
		selected = selected[:count]
	}

	items := make([]Item, 0, len(selected))
	for _, q := range selected {
		items = append(items, g.buildItem(q, pools, allAnswers))
	}
	return items
}

func (g *Generator) buildItem(q bank.Question, pools map[classify.Kind][]string, allAnswers []string) Item {
	correct := q.A
	kindPool := without(pools[classify.Classify(correct)], correct)

	var distractors []string
	if len(kindPool) >= distractorCount {
		distractors = shuffled(g.rng, kindPool)[:distractorCount]
	} else {
		distractors = append(distractors, kindPool...)
		need := distractorCount - len(distractors)
		fill := g.globalSample(allAnswers, correct, distractors, need)
		distractors = append(distractors, fill...)
	}

	options := shuffled(g.rng, append([]string{correct}, distractors...))
	return Item{
		Question:      q.Q,
		Options:       options,
		CorrectAnswer: correct,
	}
}

// globalSample draws n answers uniformly from the unique answer universe,
// excluding the correct answer and any distractor already chosen.
func (g *Generator) globalSample(allAnswers []string, correct string, taken []string, n int) []string {
	exclude := make(map[string]struct{}, len(taken)+1)
	exclude[correct] = struct{}{}
	for _, t := range taken {
		exclude[t] = struct{}{}
	}

	var candidates []string
	for _, a := range allAnswers {
		if _, skip := exclude[a]; skip {
			continue
		}
		exclude[a] = struct{}{} // dedupe the universe while filtering
		candidates = append(candidates, a)
	}

	candidates = shuffled(g.rng, candidates)
	if n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}

// shuffled returns a uniformly shuffled copy of src.
func shuffled[T any](rng *rand.Rand, src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// without returns pool minus every occurrence of value.
func without(pool []string, value string) []string {
	out := make([]string, 0, len(pool))
	for _, a := range pool {
		if a != value {
			out = append(out, a)
		}
	}
	return out
}
