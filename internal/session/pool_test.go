package session

import (
	"testing"

	"github.com/ichimon-app/ichimon/internal/bank"
	"github.com/ichimon-app/ichimon/internal/mastery"
)

func makePool(n int) []bank.Question {
	qs := make([]bank.Question, n)
	for i := range qs {
		qs[i] = bank.Question{Q: q(i), A: "a"}
	}
	return qs
}

func q(i int) string {
	return string(rune('A'+i/10)) + string(rune('0'+i%10))
}

func testCats() []bank.Category {
	return []bank.Category{
		{Title: "one", Questions: []bank.Question{{Q: "1a", A: "x"}, {Q: "1b", A: "y"}}},
		{Title: "two", Questions: []bank.Question{{Q: "2a", A: "z"}}},
		{Title: "three", Questions: []bank.Question{{Q: "3a", A: "w"}}},
	}
}

func TestBuildPool_NormalModePreservesOrder(t *testing.T) {
	cats := testCats()
	pool := BuildPool([]string{"one", "three"}, ModeNormal, cats, mastery.HistoryStore{})

	want := []string{"1a", "1b", "3a"}
	if len(pool) != len(want) {
		t.Fatalf("pool = %d questions, want %d", len(pool), len(want))
	}
	for i, w := range want {
		if pool[i].Q != w {
			t.Errorf("pool[%d] = %q, want %q", i, pool[i].Q, w)
		}
	}
}

func TestBuildPool_WeaknessModeFiltersMastered(t *testing.T) {
	cats := testCats()
	h := mastery.HistoryStore{
		"one": {QuestionStats: map[string]*mastery.QuestionStats{
			"1a": {MasteryLevel: 3},
		}},
	}

	pool := BuildPool([]string{"one", "two"}, ModeWeakness, cats, h)
	want := []string{"1b", "2a"} // 1a mastered; "two" has no history, all weak
	if len(pool) != len(want) {
		t.Fatalf("pool = %v, want %v", pool, want)
	}
	for i, w := range want {
		if pool[i].Q != w {
			t.Errorf("pool[%d] = %q, want %q", i, pool[i].Q, w)
		}
	}
}

func TestBuildPool_EmptySelection(t *testing.T) {
	if pool := BuildPool(nil, ModeNormal, testCats(), mastery.HistoryStore{}); len(pool) != 0 {
		t.Errorf("pool = %v, want empty", pool)
	}
}

func TestPartitionIntoBlocks_25Into10(t *testing.T) {
	pool := makePool(25)
	blocks := PartitionIntoBlocks(pool, 10)

	wantSizes := []int{10, 10, 5}
	if len(blocks) != len(wantSizes) {
		t.Fatalf("got %d blocks, want %d", len(blocks), len(wantSizes))
	}
	for i, want := range wantSizes {
		if len(blocks[i]) != want {
			t.Errorf("block %d has %d questions, want %d", i, len(blocks[i]), want)
		}
	}
}

func TestPartitionIntoBlocks_ConcatenationEqualsPool(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25, 30} {
		pool := makePool(n)
		blocks := PartitionIntoBlocks(pool, 10)

		wantBlocks := (n + 9) / 10
		if len(blocks) != wantBlocks {
			t.Errorf("n=%d: %d blocks, want %d", n, len(blocks), wantBlocks)
		}

		var joined []bank.Question
		for _, b := range blocks {
			joined = append(joined, b...)
		}
		if len(joined) != n {
			t.Fatalf("n=%d: concatenation has %d questions", n, len(joined))
		}
		for i := range joined {
			if joined[i] != pool[i] {
				t.Errorf("n=%d: concatenation reorders at %d", n, i)
			}
		}
	}
}

func TestPartitionIntoBlocks_NonPositiveSizeUsesDefault(t *testing.T) {
	blocks := PartitionIntoBlocks(makePool(15), 0)
	if len(blocks) != 2 || len(blocks[0]) != DefaultBlockSize {
		t.Errorf("blocks = %d with first size %d, want 2 blocks of default size", len(blocks), len(blocks[0]))
	}
}
