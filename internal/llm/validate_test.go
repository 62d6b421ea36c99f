package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func clueSchema() *Schema {
	return &Schema{
		Name:        "test-clue",
		Description: "A clue with a difficulty",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"clue":       map[string]any{"type": "string", "maxLength": 40},
				"difficulty": map[string]any{"type": "string", "enum": []any{"easy", "hard"}},
				"letters":    map[string]any{"type": "integer", "minimum": 1},
			},
			"required":             []any{"clue"},
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
		{"valid", `{"clue":"a small pet","difficulty":"easy","letters":3}`, false},
		{"optional fields omitted", `{"clue":"a small pet"}`, false},
		{"missing required", `{"difficulty":"easy"}`, true},
		{"wrong type", `{"clue":3}`, true},
		{"bad enum", `{"clue":"x","difficulty":"medium"}`, true},
		{"too long", `{"clue":"this clue is far too long to be accepted here"}`, true},
		{"extra property", `{"clue":"x","answer":"cat"}`, true},
		{"below minimum", `{"clue":"x","letters":0}`, true},
		{"malformed", `{not json}`, true},
		{"empty", ``, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(clueSchema(), json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Fatalf("validateResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var inv *ErrInvalidResponse
			if !errors.As(err, &inv) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
			if string(inv.Content) != tt.raw {
				t.Fatalf("expected content %q to be kept, got %q", tt.raw, inv.Content)
			}
		})
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name: "test-nested",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"word": map[string]any{
					"type":       "object",
					"properties": map[string]any{"text": map[string]any{"type": "string"}},
					"required":   []any{"text"},
				},
				"positions": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "integer"},
				},
			},
			"required": []any{"word", "positions"},
		},
	}

	valid := json.RawMessage(`{"word":{"text":"banana"},"positions":[1,3,5]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	invalid := json.RawMessage(`{"word":{"text":"banana"},"positions":["one"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
