package mastery

import (
	"math"
	"time"

	"github.com/ichimon-app/ichimon/internal/bank"
)

// RecordOutcome applies one mark and returns the updated store. The input
// store is never mutated. A known mark raises the question's mastery level
// by one (capped at Threshold); an unknown mark lowers it by one (floored
// at zero) and increments the incorrect counter. The category's last-played
// timestamp is set to now either way.
func RecordOutcome(h HistoryStore, categoryTitle, questionText string, outcome Outcome, now time.Time) HistoryStore {
	updated := h.Clone()
	ch, qs := getOrCreate(updated, categoryTitle, questionText)

	switch outcome {
	case OutcomeKnown:
		qs.MasteryLevel = min(Threshold, qs.MasteryLevel+1)
	case OutcomeUnknown:
		qs.MasteryLevel = max(0, qs.MasteryLevel-1)
		qs.Incorrect++
	}

	ch.LastPlayed = timestamp(now)
	return updated
}

// MasteredCount returns how many questions in the category history have
// reached the mastery threshold.
func MasteredCount(ch *CategoryHistory) int {
	if ch == nil {
		return 0
	}
	n := 0
	for _, qs := range ch.QuestionStats {
		if qs.MasteryLevel >= Threshold {
			n++
		}
	}
	return n
}

// WeakQuestions filters questions to those not yet mastered: no recorded
// stats, or a mastery level below the threshold. A category with no
// history at all is entirely weak.
func WeakQuestions(questions []bank.Question, categoryTitle string, h HistoryStore) []bank.Question {
	ch := h[categoryTitle]
	if ch == nil || ch.QuestionStats == nil {
		return questions
	}

	var weak []bank.Question
	for _, q := range questions {
		qs := ch.QuestionStats[q.Q]
		if qs == nil || qs.MasteryLevel < Threshold {
			weak = append(weak, q)
		}
	}
	return weak
}

// Percentage returns the category's mastery as a rounded 0-100 score:
// the sum of mastery levels over the maximum attainable. A category with
// no questions scores zero.
func Percentage(cat bank.Category, ch *CategoryHistory) int {
	total := len(cat.Questions)
	if total == 0 {
		return 0
	}

	score := 0
	if ch != nil && ch.QuestionStats != nil {
		for _, q := range cat.Questions {
			if qs := ch.QuestionStats[q.Q]; qs != nil {
				score += qs.MasteryLevel
			}
		}
	}

	maxScore := total * Threshold
	return int(math.Round(float64(score) / float64(maxScore) * 100))
}
