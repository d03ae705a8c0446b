package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
	if err := s.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestProfileRepo_MissingUser(t *testing.T) {
	s := openTestStore(t)

	p, err := s.ProfileRepo().Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil profile, got %+v", p)
	}
}

func TestProfileRepo_Roundtrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().User.Create().
		SetID("user-1").
		SetLearningStyle("visual").
		SetDifficultyPreference("moderate").
		SetInterests([]string{"math"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}

	p, err := s.ProfileRepo().Get(ctx, "user-1")
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if p == nil {
		t.Fatal("expected profile")
	}
	if p.LearningStyle != "visual" || p.DifficultyPreference != "moderate" {
		t.Fatalf("unexpected profile: %+v", p)
	}
	if len(p.Interests) != 1 || p.Interests[0] != "math" {
		t.Fatalf("interests not round-tripped: %v", p.Interests)
	}
}

func TestSessionRepo_TokenLookup(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().Session.Create().
		SetToken("tok-1").
		SetUserID("user-1").
		Save(ctx)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	userID, err := s.SessionRepo().UserIDForToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("expected user-1, got %q", userID)
	}

	userID, err = s.SessionRepo().UserIDForToken(ctx, "unknown")
	if err != nil {
		t.Fatalf("lookup unknown: %v", err)
	}
	if userID != "" {
		t.Fatalf("expected empty for unknown token, got %q", userID)
	}
}

func TestSessionRepo_ExpiredToken(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().Session.Create().
		SetToken("tok-old").
		SetUserID("user-1").
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}

	userID, err := s.SessionRepo().UserIDForToken(ctx, "tok-old")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if userID != "" {
		t.Fatalf("expected empty for expired token, got %q", userID)
	}
}

func TestChatRepo_Append(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.ChatRepo().Append(ctx, ChatRecord{
		UserID:   "user-1",
		Message:  "What is a derivative?",
		Response: "A derivative measures rate of change.",
		Personalization: Personalization{
			LearningStyle: "visual",
			Difficulty:    "moderate",
			Interests:     []string{"math"},
		},
	})
	if err != nil {
		t.Fatalf("append chat: %v", err)
	}

	rec, err := s.Client().Chat.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query chat: %v", err)
	}
	if rec.ID == "" {
		t.Fatal("expected generated chat ID")
	}
	if rec.UserID != "user-1" || rec.Message != "What is a derivative?" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Metadata["personalization"] == nil {
		t.Fatal("personalization snapshot missing")
	}
}

func TestEventRepo_AppendLLMRequest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.EventRepo().AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "tutor-chat",
		InputTokens:  10,
		OutputTokens: 20,
		LatencyMs:    5,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append event: %v", err)
	}

	ev, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query event: %v", err)
	}
	if ev.Purpose != "tutor-chat" || !ev.Success {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Timestamp.IsZero() {
		t.Fatal("timestamp not defaulted")
	}
}
