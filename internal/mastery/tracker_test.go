package mastery

import (
	"testing"
	"time"

	"github.com/ichimon-app/ichimon/internal/bank"
)

var markTime = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func TestRecordOutcome_LazyCreation(t *testing.T) {
	h := HistoryStore{}
	updated := RecordOutcome(h, "cat", "q1", OutcomeKnown, markTime)

	ch := updated["cat"]
	if ch == nil {
		t.Fatal("category history not created")
	}
	qs := ch.QuestionStats["q1"]
	if qs == nil {
		t.Fatal("question stats not created")
	}
	if qs.MasteryLevel != 1 {
		t.Errorf("MasteryLevel = %d, want 1", qs.MasteryLevel)
	}
	if ch.LastPlayed != "2026-03-14T09:00:00Z" {
		t.Errorf("LastPlayed = %q", ch.LastPlayed)
	}
	if len(h) != 0 {
		t.Error("input store was mutated")
	}
}

func TestRecordOutcome_LevelBounds(t *testing.T) {
	h := HistoryStore{}

	// Far more known marks than the threshold allows.
	for i := 0; i < 10; i++ {
		h = RecordOutcome(h, "cat", "q1", OutcomeKnown, markTime)
		if lvl := h["cat"].QuestionStats["q1"].MasteryLevel; lvl < 0 || lvl > Threshold {
			t.Fatalf("level %d out of [0, %d] after %d known marks", lvl, Threshold, i+1)
		}
	}
	if lvl := h["cat"].QuestionStats["q1"].MasteryLevel; lvl != Threshold {
		t.Errorf("level = %d, want %d", lvl, Threshold)
	}

	for i := 0; i < 10; i++ {
		h = RecordOutcome(h, "cat", "q1", OutcomeUnknown, markTime)
		if lvl := h["cat"].QuestionStats["q1"].MasteryLevel; lvl < 0 || lvl > Threshold {
			t.Fatalf("level %d out of [0, %d] after %d unknown marks", lvl, Threshold, i+1)
		}
	}
	if lvl := h["cat"].QuestionStats["q1"].MasteryLevel; lvl != 0 {
		t.Errorf("level = %d, want 0", lvl)
	}
	if inc := h["cat"].QuestionStats["q1"].Incorrect; inc != 10 {
		t.Errorf("Incorrect = %d, want 10", inc)
	}
}

func TestRecordOutcome_FunctionalUpdate(t *testing.T) {
	base := RecordOutcome(HistoryStore{}, "cat", "q1", OutcomeKnown, markTime)
	next := RecordOutcome(base, "cat", "q1", OutcomeKnown, markTime)

	if base["cat"].QuestionStats["q1"].MasteryLevel != 1 {
		t.Error("prior store changed by later update")
	}
	if next["cat"].QuestionStats["q1"].MasteryLevel != 2 {
		t.Error("update not applied to new store")
	}
}

// Reaching the threshold and then failing once: level drops to 2, the
// incorrect counter moves, and the question is weak again.
func TestRecordOutcome_RegressionAfterMastery(t *testing.T) {
	qs := []bank.Question{{Q: "q1", A: "a1"}}
	h := HistoryStore{}
	for i := 0; i < 3; i++ {
		h = RecordOutcome(h, "cat", "q1", OutcomeKnown, markTime)
	}
	if weak := WeakQuestions(qs, "cat", h); len(weak) != 0 {
		t.Fatalf("mastered question still weak: %v", weak)
	}

	h = RecordOutcome(h, "cat", "q1", OutcomeUnknown, markTime)
	stats := h["cat"].QuestionStats["q1"]
	if stats.MasteryLevel != 2 {
		t.Errorf("MasteryLevel = %d, want 2", stats.MasteryLevel)
	}
	if stats.Incorrect != 1 {
		t.Errorf("Incorrect = %d, want 1", stats.Incorrect)
	}
	if weak := WeakQuestions(qs, "cat", h); len(weak) != 1 {
		t.Errorf("question should be weak again, got %v", weak)
	}
}

func TestWeakQuestions_NoHistoryMeansAllWeak(t *testing.T) {
	qs := []bank.Question{{Q: "q1"}, {Q: "q2"}, {Q: "q3"}}
	weak := WeakQuestions(qs, "cat", HistoryStore{})
	if len(weak) != len(qs) {
		t.Errorf("weak = %d questions, want all %d", len(weak), len(qs))
	}
}

func TestWeakQuestions_FiltersMastered(t *testing.T) {
	qs := []bank.Question{{Q: "q1"}, {Q: "q2"}, {Q: "q3"}}
	h := HistoryStore{
		"cat": {QuestionStats: map[string]*QuestionStats{
			"q1": {MasteryLevel: 3},
			"q2": {MasteryLevel: 2},
			// q3 has no stats at all.
		}},
	}
	weak := WeakQuestions(qs, "cat", h)
	if len(weak) != 2 {
		t.Fatalf("weak = %d questions, want 2", len(weak))
	}
	if weak[0].Q != "q2" || weak[1].Q != "q3" {
		t.Errorf("weak = %v, want [q2 q3] in bank order", weak)
	}
}

func TestMasteredCount(t *testing.T) {
	if got := MasteredCount(nil); got != 0 {
		t.Errorf("MasteredCount(nil) = %d, want 0", got)
	}
	ch := &CategoryHistory{QuestionStats: map[string]*QuestionStats{
		"q1": {MasteryLevel: 3},
		"q2": {MasteryLevel: 3},
		"q3": {MasteryLevel: 1},
	}}
	if got := MasteredCount(ch); got != 2 {
		t.Errorf("MasteredCount = %d, want 2", got)
	}
}

func TestPercentage(t *testing.T) {
	cat := bank.Category{
		Title:     "cat",
		Questions: []bank.Question{{Q: "q1"}, {Q: "q2"}},
	}

	if got := Percentage(bank.Category{Title: "empty"}, nil); got != 0 {
		t.Errorf("empty category Percentage = %d, want 0", got)
	}
	if got := Percentage(cat, nil); got != 0 {
		t.Errorf("no-history Percentage = %d, want 0", got)
	}

	ch := &CategoryHistory{QuestionStats: map[string]*QuestionStats{
		"q1": {MasteryLevel: 3},
		"q2": {MasteryLevel: 1},
	}}
	// 4 of 6 points → 66.67, rounded to 67.
	if got := Percentage(cat, ch); got != 67 {
		t.Errorf("Percentage = %d, want 67", got)
	}

	full := &CategoryHistory{QuestionStats: map[string]*QuestionStats{
		"q1": {MasteryLevel: 3},
		"q2": {MasteryLevel: 3},
	}}
	if got := Percentage(cat, full); got != 100 {
		t.Errorf("Percentage = %d, want 100", got)
	}
}
