package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/bokibattle/internal/catalog"
	"github.com/abhisek/bokibattle/internal/llm"
)

func validJournalJSON() json.RawMessage {
	return json.RawMessage(`{
		"questionText": "A商店から商品120,000円を仕入れ、代金は掛けとした。",
		"debits": [{"accountName": "仕入", "amount": 120000}],
		"credits": [{"accountName": "買掛金", "amount": 120000}],
		"explanation": "掛けによる仕入は買掛金（負債）の増加です。"
	}`)
}

func newTestLLMGenerator(mock *llm.MockProvider) *LLMGenerator {
	return NewLLMGenerator(mock, DefaultConfig(), WithSeed(1, 2), WithIDSource(counterIDs()))
}

func TestLLMGenerate_Valid(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validJournalJSON()})
	gen := newTestLLMGenerator(mock)

	p, err := gen.Generate(context.Background(), Request{Difficulty: "easy"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Source != SourceAI {
		t.Errorf("expected ai source, got %q", p.Source)
	}
	if p.Kind != catalog.KindJournal {
		t.Errorf("expected journal kind, got %q", p.Kind)
	}
	if p.ID != "p1" {
		t.Errorf("expected id p1, got %q", p.ID)
	}
	if !IsCorrect(JournalAnswer{Entry: p.Journal}, p) {
		t.Error("returned entry should validate against itself")
	}
	for _, a := range []string{"仕入", "買掛金"} {
		found := false
		for _, o := range p.AccountOptions {
			if o == a {
				found = true
			}
		}
		if !found {
			t.Errorf("account %s missing from options", a)
		}
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != JournalSchema {
		t.Error("expected journal schema")
	}
	if !strings.Contains(req.Messages[0].Content, "難易度: easy") {
		t.Error("expected difficulty in prompt")
	}
}

func TestLLMGenerate_PriorQuestionsInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validJournalJSON()},
		llm.MockResponse{Content: validJournalJSON()},
	)
	gen := newTestLLMGenerator(mock)
	if _, err := gen.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if _, err := gen.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "1. A商店から商品120,000円を仕入れ") {
		t.Errorf("expected prior question in prompt, got:\n%s", second)
	}
}

func TestLLMGenerate_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		validator string
	}{
		{
			name:      "unbalanced",
			content:   `{"questionText":"q","debits":[{"accountName":"仕入","amount":100}],"credits":[{"accountName":"買掛金","amount":90}],"explanation":"e"}`,
			validator: "balance",
		},
		{
			name:      "negative amount",
			content:   `{"questionText":"q","debits":[{"accountName":"仕入","amount":-100}],"credits":[{"accountName":"買掛金","amount":-100}],"explanation":"e"}`,
			validator: "balance",
		},
		{
			name:      "unknown account",
			content:   `{"questionText":"q","debits":[{"accountName":"仕入高","amount":100}],"credits":[{"accountName":"買掛金","amount":100}],"explanation":"e"}`,
			validator: "chart",
		},
		{
			name:      "empty credits",
			content:   `{"questionText":"q","debits":[{"accountName":"仕入","amount":100}],"credits":[],"explanation":"e"}`,
			validator: "structural",
		},
		{
			name:      "empty text",
			content:   `{"questionText":"","debits":[{"accountName":"仕入","amount":100}],"credits":[{"accountName":"買掛金","amount":100}],"explanation":"e"}`,
			validator: "structural",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(tc.content)})
			_, err := newTestLLMGenerator(mock).Generate(context.Background(), Request{})
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Validator != tc.validator {
				t.Errorf("expected validator %q, got %q (%s)", tc.validator, verr.Validator, verr.Message)
			}
		})
	}
}

func TestLLMGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	_, err := newTestLLMGenerator(mock).Generate(context.Background(), Request{})
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected wrapped ErrProviderUnavailable, got %v", err)
	}
}

func TestLLMGenerate_BadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	_, err := newTestLLMGenerator(mock).Generate(context.Background(), Request{})
	if err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestLLMGenerate_NonJournalRequest(t *testing.T) {
	mock := llm.NewMockProvider()
	_, err := newTestLLMGenerator(mock).Generate(context.Background(), Request{Kinds: []catalog.Kind{catalog.KindSelect}})
	if !errors.Is(err, ErrKindNotSupported) {
		t.Fatalf("expected ErrKindNotSupported, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called")
	}
}
