// Package bank defines the static question bank and its loader.
// A bank is read-only after loading; all mutable study state lives in the
// history store.
package bank

// Question is a single question/answer pair. The question text is the
// natural key and must be unique within its category.
type Question struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// Category is a titled, ordered group of questions.
type Category struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Bank is the full question bank for one chapter.
type Bank struct {
	ChapterNumber string     `json:"chapterNumber"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Categories    []Category `json:"categories"`
}

// AllAnswers returns every answer in category order, duplicates included.
func (b *Bank) AllAnswers() []string {
	var out []string
	for _, c := range b.Categories {
		for _, q := range c.Questions {
			out = append(out, q.A)
		}
	}
	return out
}

// UniqueAnswerCount returns the size of the distinct answer universe.
func (b *Bank) UniqueAnswerCount() int {
	seen := make(map[string]struct{})
	for _, c := range b.Categories {
		for _, q := range c.Questions {
			seen[q.A] = struct{}{}
		}
	}
	return len(seen)
}

// CategoryByTitle returns the category with the given title, or nil.
func (b *Bank) CategoryByTitle(title string) *Category {
	for i := range b.Categories {
		if b.Categories[i].Title == title {
			return &b.Categories[i]
		}
	}
	return nil
}

// CategoryForQuestion returns the category containing the question text,
// or nil when no category has it.
func (b *Bank) CategoryForQuestion(questionText string) *Category {
	for i := range b.Categories {
		for _, q := range b.Categories[i].Questions {
			if q.Q == questionText {
				return &b.Categories[i]
			}
		}
	}
	return nil
}
