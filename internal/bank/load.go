package bank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// MinUniqueAnswers is the smallest answer universe that can still produce
// four distinct options per question. Smaller banks are rejected at load
// time so the generator never has to handle the shortfall.
const MinUniqueAnswers = 4

//go:embed bank.json
var defaultBankJSON []byte

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not raw bytes.
		b, err := json.Marshal(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(b, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://bank.json", parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://bank.json")
	})
	return compiledSchema, compileErr
}

// Load parses and validates a bank file. It rejects structurally invalid
// JSON, duplicate question texts within a category, and banks whose unique
// answer universe is below MinUniqueAnswers.
func Load(data []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	s, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := s.Validate(parsed); err != nil {
		return nil, fmt.Errorf("validate bank: %w", err)
	}

	var b Bank
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	for _, cat := range b.Categories {
		seen := make(map[string]struct{}, len(cat.Questions))
		for _, q := range cat.Questions {
			if _, dup := seen[q.Q]; dup {
				return nil, fmt.Errorf("category %q: duplicate question %q", cat.Title, q.Q)
			}
			seen[q.Q] = struct{}{}
		}
	}

	if n := b.UniqueAnswerCount(); n < MinUniqueAnswers {
		return nil, fmt.Errorf("bank has %d unique answers, need at least %d for four-option quizzes", n, MinUniqueAnswers)
	}

	return &b, nil
}

// Default returns the embedded question bank.
func Default() (*Bank, error) {
	return Load(defaultBankJSON)
}
