package llm

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/store"
)

type fakeEventRepo struct {
	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, data)
	return f.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{
		Text:  "hi",
		Usage: Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "tutor-chat")
	if _, err := p.Generate(ctx, Request{Prompt: "hello"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success {
		t.Fatal("expected success event")
	}
	if ev.Purpose != "tutor-chat" {
		t.Fatalf("purpose not recorded: %s", ev.Purpose)
	}
	if ev.InputTokens != 10 || ev.OutputTokens != 5 {
		t.Fatalf("usage not recorded: %+v", ev)
	}
	if ev.LatencyMs < 0 {
		t.Fatalf("negative latency: %d", ev.LatencyMs)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{
		Err: &ErrProviderUnavailable{Err: errors.New("down")},
	})
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Fatal("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Fatal("error message not recorded")
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeEventRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Text: "still fine"})
	p := WithLogging(mock, repo)

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("request failed over bookkeeping: %v", err)
	}
	if resp.Text != "still fine" {
		t.Fatalf("unexpected text: %s", resp.Text)
	}
}
