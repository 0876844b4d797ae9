package problemgen

import "github.com/abhisek/bokibattle/internal/llm"

var journalLineSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"accountName": map[string]any{
			"type":        "string",
			"description": "勘定科目名。指定された勘定科目一覧の表記と完全に一致させる",
		},
		"amount": map[string]any{
			"type":        "integer",
			"minimum":     1,
			"description": "金額（円、正の整数）",
		},
	},
	"required":             []any{"accountName", "amount"},
	"additionalProperties": false,
}

// JournalSchema defines the JSON schema for AI journal-entry problems.
var JournalSchema = &llm.Schema{
	Name:        "journal-problem",
	Description: "A single bookkeeping journal-entry question with its correct entry and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionText": map[string]any{
				"type":        "string",
				"description": "取引の説明文（問題文）",
			},
			"debits": map[string]any{
				"type":        "array",
				"minItems":    1,
				"items":       journalLineSchema,
				"description": "借方の仕訳行",
			},
			"credits": map[string]any{
				"type":        "array",
				"minItems":    1,
				"items":       journalLineSchema,
				"description": "貸方の仕訳行",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "解説",
			},
		},
		"required":             []any{"questionText", "debits", "credits", "explanation"},
		"additionalProperties": false,
	},
}
