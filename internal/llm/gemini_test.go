package llm

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	schema := buildGeminiSchema(testSchema().Definition)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["questionText"].Type != genai.TypeString {
		t.Errorf("expected STRING for questionText, got %s", schema.Properties["questionText"].Type)
	}
	amount := schema.Properties["amount"]
	if amount.Type != genai.TypeInteger {
		t.Errorf("expected INTEGER for amount, got %s", amount.Type)
	}
	if amount.Minimum == nil || *amount.Minimum != 1 {
		t.Errorf("expected minimum 1, got %v", amount.Minimum)
	}
	if len(schema.Properties["side"].Enum) != 2 {
		t.Errorf("expected 2 enum values, got %d", len(schema.Properties["side"].Enum))
	}
	lines := schema.Properties["lines"]
	if lines.Type != genai.TypeArray || lines.Items == nil || lines.Items.Type != genai.TypeObject {
		t.Fatalf("expected ARRAY of OBJECT for lines, got %+v", lines)
	}
	if lines.MinItems == nil || *lines.MinItems != 1 {
		t.Errorf("expected minItems 1, got %v", lines.MinItems)
	}
	if len(lines.Items.Required) != 1 {
		t.Errorf("expected nested required field, got %v", lines.Items.Required)
	}
	if len(schema.Required) != 2 {
		t.Errorf("expected 2 required fields, got %d", len(schema.Required))
	}
}

func TestStringList(t *testing.T) {
	if got := stringList([]string{"a", "b"}); len(got) != 2 {
		t.Errorf("[]string: got %v", got)
	}
	if got := stringList([]any{"a", 1, "b"}); len(got) != 2 {
		t.Errorf("[]any: got %v", got)
	}
	if got := stringList(nil); got != nil {
		t.Errorf("nil: got %v", got)
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{FinishReason: "MAX_TOKENS"}},
	}
	if got := mapGeminiStopReason(resp); got != StopMaxTokens {
		t.Errorf("got %q, want %q", got, StopMaxTokens)
	}
	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != StopEnd {
		t.Errorf("got %q, want %q", got, StopEnd)
	}
}

func TestMapGeminiError(t *testing.T) {
	var rl *ErrRateLimit
	if !errors.As(mapGeminiError(&genai.APIError{Code: 429}), &rl) {
		t.Error("expected ErrRateLimit for 429")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(mapGeminiError(errors.New("dial tcp")), &unavail) {
		t.Error("expected ErrProviderUnavailable")
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(context.Background(), GeminiConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
