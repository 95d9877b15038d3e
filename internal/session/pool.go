// Package session builds playable question pools from the bank, partitions
// them into blocks, and drives the session lifecycle including the
// retry-wrong / retry-all flow.
package session

import (
	"github.com/ichimon-app/ichimon/internal/bank"
	"github.com/ichimon-app/ichimon/internal/mastery"
)

// Mode selects which questions a category contributes to the pool.
type Mode string

const (
	// ModeNormal takes every question in the category.
	ModeNormal Mode = "normal"
	// ModeWeakness takes only questions below the mastery threshold.
	ModeWeakness Mode = "weakness"
)

// DefaultBlockSize is the number of questions per selectable block.
const DefaultBlockSize = 10

// BuildPool concatenates the contributions of the selected categories in
// category order, preserving each category's internal question order.
func BuildPool(selected []string, mode Mode, cats []bank.Category, h mastery.HistoryStore) []bank.Question {
	want := make(map[string]bool, len(selected))
	for _, title := range selected {
		want[title] = true
	}

	var pool []bank.Question
	for _, cat := range cats {
		if !want[cat.Title] {
			continue
		}
		if mode == ModeWeakness {
			pool = append(pool, mastery.WeakQuestions(cat.Questions, cat.Title, h)...)
		} else {
			pool = append(pool, cat.Questions...)
		}
	}
	return pool
}

// PartitionIntoBlocks splits the pool into contiguous, non-overlapping
// slices of at most blockSize questions. The last block may be shorter.
// The partition is exhaustive and preserves pool order; blocks share the
// pool's backing array.
func PartitionIntoBlocks(pool []bank.Question, blockSize int) [][]bank.Question {
	if blockSize <= 0 {
		blockSize = DefaultBlockSize
	}

	var blocks [][]bank.Question
	for start := 0; start < len(pool); start += blockSize {
		end := min(start+blockSize, len(pool))
		blocks = append(blocks, pool[start:end])
	}
	return blocks
}
