package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakeSessions struct {
	tokens map[string]string
	err    error
}

func (f *fakeSessions) UserIDForToken(_ context.Context, token string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.tokens[token], nil
}

func identityEcho(t *testing.T, sessions *fakeSessions, decorate func(*http.Request)) string {
	t.Helper()

	var got string
	handler := Middleware(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = UserIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if decorate != nil {
		decorate(req)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	return got
}

func TestMiddleware_BearerToken(t *testing.T) {
	sessions := &fakeSessions{tokens: map[string]string{"tok-1": "user-42"}}

	got := identityEcho(t, sessions, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer tok-1")
	})

	if got != "user-42" {
		t.Fatalf("expected user-42, got %q", got)
	}
}

func TestMiddleware_SessionCookie(t *testing.T) {
	sessions := &fakeSessions{tokens: map[string]string{"tok-2": "user-7"}}

	got := identityEcho(t, sessions, func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok-2"})
	})

	if got != "user-7" {
		t.Fatalf("expected user-7, got %q", got)
	}
}

func TestMiddleware_NoToken(t *testing.T) {
	sessions := &fakeSessions{tokens: map[string]string{}}

	if got := identityEcho(t, sessions, nil); got != "" {
		t.Fatalf("expected unauthenticated, got %q", got)
	}
}

func TestMiddleware_UnknownToken(t *testing.T) {
	sessions := &fakeSessions{tokens: map[string]string{}}

	got := identityEcho(t, sessions, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer nope")
	})

	if got != "" {
		t.Fatalf("expected unauthenticated, got %q", got)
	}
}

func TestMiddleware_LookupErrorTreatedAsUnauthenticated(t *testing.T) {
	sessions := &fakeSessions{err: errors.New("db down")}

	got := identityEcho(t, sessions, func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer tok")
	})

	if got != "" {
		t.Fatalf("expected unauthenticated on lookup error, got %q", got)
	}
}

func TestUserIDFromContext_Empty(t *testing.T) {
	if got := UserIDFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}
