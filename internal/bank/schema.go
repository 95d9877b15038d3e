package bank

// bankSchema is the JSON schema every bank file must satisfy before decoding.
var bankSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"chapterNumber": map[string]any{"type": "string"},
		"title":         map[string]any{"type": "string"},
		"description":   map[string]any{"type": "string"},
		"categories": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"questions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"q": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"a": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
							},
							"required":             []any{"q", "a"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"title", "questions"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"chapterNumber", "title", "description", "categories"},
	"additionalProperties": false,
}
