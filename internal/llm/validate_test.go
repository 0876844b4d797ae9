package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-entry",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questionText": map[string]any{"type": "string"},
				"amount":       map[string]any{"type": "integer", "minimum": 1},
				"side":         map[string]any{"type": "string", "enum": []any{"debit", "credit"}},
				"lines": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":       "object",
						"properties": map[string]any{"accountName": map[string]any{"type": "string"}},
						"required":   []any{"accountName"},
					},
				},
			},
			"required":             []any{"questionText", "amount"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"questionText":"q","amount":12000,"side":"debit"}`, false},
		{"without optional", `{"questionText":"q","amount":1}`, false},
		{"nested lines", `{"questionText":"q","amount":1,"lines":[{"accountName":"現金"}]}`, false},
		{"missing required", `{"questionText":"q"}`, true},
		{"wrong type", `{"questionText":"q","amount":"ten"}`, true},
		{"below minimum", `{"questionText":"q","amount":0}`, true},
		{"invalid enum", `{"questionText":"q","amount":1,"side":"both"}`, true},
		{"empty lines", `{"questionText":"q","amount":1,"lines":[]}`, true},
		{"nested missing field", `{"questionText":"q","amount":1,"lines":[{}]}`, true},
		{"extra property", `{"questionText":"q","amount":1,"hint":"x"}`, true},
		{"malformed", `{"questionText":`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema(), json.RawMessage(tt.raw))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("expected no error, got: %v", err)
				}
				return
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
			}
			if string(invErr.Content) != tt.raw {
				t.Errorf("content = %s, want %s", invErr.Content, tt.raw)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected nil for nil schema, got: %v", err)
	}
}

func TestSchemaCacheReusesCompiled(t *testing.T) {
	s := testSchema()
	a, err := compiledSchemas.get(s)
	if err != nil {
		t.Fatal(err)
	}
	b, err := compiledSchemas.get(s)
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("expected cached schema to be reused")
	}
}

func TestValidateResponse_BadSchema(t *testing.T) {
	bad := &Schema{Name: "test-bad", Definition: map[string]any{"type": 7}}
	err := validateResponse(bad, json.RawMessage(`{}`))
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
