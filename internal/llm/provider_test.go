package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockProvider_FIFOOrder(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"score":0.8}`), Usage: Usage{InputTokens: 12, OutputTokens: 4, TotalTokens: 16}},
		MockResponse{Content: json.RawMessage(`{"score":0.3}`)},
	)

	first, err := mock.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "reasoning text"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first.Content) != `{"score":0.8}` {
		t.Fatalf("unexpected first content: %s", first.Content)
	}
	if first.Usage.TotalTokens != 16 {
		t.Fatalf("expected 16 total tokens, got %d", first.Usage.TotalTokens)
	}
	if first.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", first.StopReason)
	}

	second, err := mock.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(second.Content) != `{"score":0.3}` {
		t.Fatalf("unexpected second content: %s", second.Content)
	}
}

func TestMockProvider_ExhaustedQueue(t *testing.T) {
	mock := NewMockProvider()
	_, err := mock.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error from exhausted queue")
	}
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got: %T", err)
	}
}

func TestMockProvider_RecordsRequests(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{}`)},
	)

	_, _ = mock.Generate(context.Background(), Request{
		System:   "score the reasoning",
		Messages: []Message{{Role: RoleUser, Content: "I checked my work twice"}},
	})

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	if mock.Calls[0].System != "score the reasoning" {
		t.Fatalf("unexpected recorded system prompt: %q", mock.Calls[0].System)
	}
	if mock.Calls[0].Messages[0].Content != "I checked my work twice" {
		t.Fatalf("unexpected recorded message: %q", mock.Calls[0].Messages[0].Content)
	}
}

func TestMockProvider_CannedError(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{Err: errors.New("429")}},
	)

	_, err := mock.Generate(context.Background(), Request{})
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got: %T", err)
	}
}

func TestMockProvider_ModelID(t *testing.T) {
	mock := NewMockProvider()
	if mock.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", mock.ModelID())
	}
}

func TestPurposeContext(t *testing.T) {
	ctx := context.Background()
	if p := PurposeFrom(ctx); p != "unknown" {
		t.Fatalf("expected 'unknown' without label, got %q", p)
	}

	ctx = WithPurpose(ctx, "reasoning-score")
	if p := PurposeFrom(ctx); p != "reasoning-score" {
		t.Fatalf("expected 'reasoning-score', got %q", p)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "anthropic without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:    "anthropic with key",
			cfg:     Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}},
			wantErr: false,
		},
		{
			name:    "openai without key",
			cfg:     Config{Provider: "openai"},
			wantErr: true,
		},
		{
			name:    "gemini with key",
			cfg:     Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "test"}},
			wantErr: false,
		},
		{
			name:    "mock needs no key",
			cfg:     Config{Provider: "mock"},
			wantErr: false,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "llama"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
