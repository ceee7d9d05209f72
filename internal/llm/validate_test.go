package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func scoreTestSchema() *Schema {
	return &Schema{
		Name:        "test-trait-score",
		Description: "A scored trait observation",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"trait":  map[string]any{"type": "string", "enum": []any{"precision", "curiosity"}},
				"score":  map[string]any{"type": "number", "minimum": 0, "maximum": 1},
				"markers": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"trait", "score"},
		},
	}
}

func TestValidateResponse_Conforming(t *testing.T) {
	raw := json.RawMessage(`{"trait":"precision","score":0.75,"markers":["exact units"]}`)
	if err := validateResponse(scoreTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_OptionalFieldOmitted(t *testing.T) {
	raw := json.RawMessage(`{"trait":"curiosity","score":0.4}`)
	if err := validateResponse(scoreTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"trait":"precision"}`)
	err := validateResponse(scoreTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse for missing score, got: %T", err)
	}
}

func TestValidateResponse_ScoreOutOfBounds(t *testing.T) {
	raw := json.RawMessage(`{"trait":"precision","score":1.4}`)
	err := validateResponse(scoreTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse for out-of-range score, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"trait":"precision","score":"high"}`)
	err := validateResponse(scoreTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse for wrong type, got: %T", err)
	}
}

func TestValidateResponse_BadEnum(t *testing.T) {
	raw := json.RawMessage(`{"trait":"stamina","score":0.5}`)
	err := validateResponse(scoreTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse for unknown trait, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"trait": precision}`)
	err := validateResponse(scoreTestSchema(), raw)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse for malformed JSON, got: %T", err)
	}
}

func TestValidateResponse_Empty(t *testing.T) {
	if err := validateResponse(scoreTestSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`{"free":"form"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}
