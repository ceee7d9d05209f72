package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"score":0.7}`)},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"score":0.7}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_RecoversFromTransientFailure(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection reset")}},
		MockResponse{Content: json.RawMessage(`{"score":0.5}`)},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"score":0.5}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ExhaustsAttempts(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	mock := NewMockProvider(down, down, down)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after exhausting attempts")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MaxTokensFailsImmediately(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"score"`)}},
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected no retries, got %d calls", mock.CallCount())
	}
}

func TestRetry_InvalidResponseGetsOneRetry(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`not json`), Err: errors.New("invalid")}}
	mock := NewMockProvider(
		bad,
		bad,
		MockResponse{Content: json.RawMessage(`{"score":0.9}`)}, // Out of reach.
	)
	p := WithRetry(mock, fastRetry())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected exactly one retry (2 calls), got %d", mock.CallCount())
	}
}

func TestRetry_CancelledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{"score":0.5}`)},
	)
	p := WithRetry(mock, fastRetry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
}

func TestRetry_HonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 1 * time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: json.RawMessage(`{"score":0.6}`)},
	)
	p := WithRetry(mock, fastRetry())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"score":0.6}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ModelIDPassthrough(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetry())
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}
