// Package mastery tracks per-question proficiency across study sessions.
// A question's mastery level grows only on success and decays only on
// failure; it is bounded and never expires with time.
package mastery

import "time"

// Threshold is the mastery level at which a question counts as mastered.
const Threshold = 3

// Outcome is the learner's self-reported result for one question.
type Outcome string

const (
	OutcomeKnown   Outcome = "known"
	OutcomeUnknown Outcome = "unknown"
)

// QuestionStats holds the recorded results for one question. Created
// lazily the first time the question is answered; all fields default to
// zero. JSON tags match the persisted history format.
type QuestionStats struct {
	Correct      int `json:"correct"`
	Incorrect    int `json:"incorrect"`
	MasteryLevel int `json:"masteryLevel"`
}

// CategoryHistory is the per-category study record. Created lazily on the
// first mark recorded for the category.
type CategoryHistory struct {
	BestScore     int                       `json:"bestScore"`
	LastPlayed    string                    `json:"lastPlayed"`
	QuestionStats map[string]*QuestionStats `json:"questionStats"`
}

// HistoryStore maps category titles to their study history. It is the
// sole piece of mutable cross-session state; updates are functional, so a
// store value can be held, compared, and persisted safely.
type HistoryStore map[string]*CategoryHistory

// Clone returns a deep copy of the store.
func (h HistoryStore) Clone() HistoryStore {
	out := make(HistoryStore, len(h))
	for title, ch := range h {
		stats := make(map[string]*QuestionStats, len(ch.QuestionStats))
		for q, s := range ch.QuestionStats {
			copied := *s
			stats[q] = &copied
		}
		out[title] = &CategoryHistory{
			BestScore:     ch.BestScore,
			LastPlayed:    ch.LastPlayed,
			QuestionStats: stats,
		}
	}
	return out
}

// getOrCreate returns the category history and question stats for the
// given keys, materializing zero-valued records as needed. Only called on
// an already-cloned store.
func getOrCreate(h HistoryStore, categoryTitle, questionText string) (*CategoryHistory, *QuestionStats) {
	ch := h[categoryTitle]
	if ch == nil {
		ch = &CategoryHistory{QuestionStats: make(map[string]*QuestionStats)}
		h[categoryTitle] = ch
	}
	if ch.QuestionStats == nil {
		ch.QuestionStats = make(map[string]*QuestionStats)
	}
	qs := ch.QuestionStats[questionText]
	if qs == nil {
		qs = &QuestionStats{}
		ch.QuestionStats[questionText] = qs
	}
	return ch, qs
}

// timestamp formats a mark time for the persisted format.
func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
