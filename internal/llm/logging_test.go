package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abhisek/wordguess/internal/store"
)

type fakeRecorder struct {
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeRecorder) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.events = append(f.events, data)
	return f.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	rec := &fakeRecorder{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"clue":"meows"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	p := WithLogging(mock, ProviderMock, zerolog.Nop(), rec)

	ctx := WithGameID(WithPurpose(context.Background(), "hint"), "g-42")
	if _, err := p.Generate(ctx, Request{System: "sys", Prompt: "clue please", Schema: clueSchema()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Provider != ProviderMock || ev.Model != "mock" || ev.Purpose != "hint" || ev.GameID != "g-42" {
		t.Fatalf("unexpected event tags %+v", ev)
	}
	if !ev.Success || ev.InputTokens != 12 || ev.OutputTokens != 4 {
		t.Fatalf("unexpected event outcome %+v", ev)
	}
	if ev.ResponseBody != `{"clue":"meows"}` {
		t.Fatalf("unexpected response body %q", ev.ResponseBody)
	}
	for _, want := range []string{"[system]\nsys", "[user]\nclue please", "[schema: test-clue]"} {
		if !strings.Contains(ev.RequestBody, want) {
			t.Fatalf("request body %q missing %q", ev.RequestBody, want)
		}
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	rec := &fakeRecorder{}
	var buf bytes.Buffer
	p := WithLogging(NewMockProvider(), ProviderMock, zerolog.New(&buf), rec)

	_, err := p.Generate(context.Background(), Request{Prompt: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(rec.events) != 1 || rec.events[0].Success || rec.events[0].ErrorMessage == "" {
		t.Fatalf("expected a failed event, got %+v", rec.events)
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected a warn log line, got %q", buf.String())
	}
}

func TestLogging_RecorderErrorDoesNotFailRequest(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, zerolog.Nop(), rec)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogging_NilRecorder(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, ProviderMock, zerolog.Nop(), nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}
}

func TestNewProvider(t *testing.T) {
	if _, err := NewProvider(context.Background(), Config{}, zerolog.Nop(), nil); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}

	cfg := DefaultConfig()
	cfg.Provider = ProviderMock
	p, err := NewProvider(context.Background(), cfg, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", p.ModelID())
	}

	cfg.Provider = ProviderOpenAI
	cfg.OpenAI.APIKey = "sk-test"
	if _, err := NewProvider(context.Background(), cfg, zerolog.Nop(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
