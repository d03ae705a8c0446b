package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/auth"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/llm"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/store"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/tutor"
)

type fakeProfiles struct {
	profiles map[string]*store.Profile
	err      error
}

func (f *fakeProfiles) Get(_ context.Context, userID string) (*store.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profiles[userID], nil
}

type fakeChats struct {
	appended chan store.ChatRecord
	err      error
}

func newFakeChats() *fakeChats {
	return &fakeChats{appended: make(chan store.ChatRecord, 1)}
}

func (f *fakeChats) Append(_ context.Context, rec store.ChatRecord) error {
	f.appended <- rec
	return f.err
}

type fakeSessions struct {
	tokens map[string]string
}

func (f *fakeSessions) UserIDForToken(_ context.Context, token string) (string, error) {
	return f.tokens[token], nil
}

func visualProfile() *store.Profile {
	return &store.Profile{
		UserID:               "user-1",
		LearningStyle:        "visual",
		DifficultyPreference: "moderate",
		Interests:            []string{"math"},
	}
}

func newHandler(mock *llm.MockProvider, profiles *fakeProfiles, chats *fakeChats) *ChatHandler {
	return NewChatHandler(tutor.NewAgent(mock), profiles, chats)
}

func doChat(h *ChatHandler, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	if userID != "" {
		req = req.WithContext(auth.WithUserID(req.Context(), userID))
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestChat_Unauthenticated401(t *testing.T) {
	h := newHandler(llm.NewMockProvider(), &fakeProfiles{}, newFakeChats())

	rr := doChat(h, "", `{"messages":[{"role":"user","content":"hi there"}]}`)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.JSONEq(t, `{"error":"Unauthorized"}`, rr.Body.String())
}

func TestChat_EmptyMessages400(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*store.Profile{"user-1": visualProfile()}}
	h := newHandler(llm.NewMockProvider(), profiles, newFakeChats())

	rr := doChat(h, "user-1", `{"messages":[]}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"error":"No messages provided"}`, rr.Body.String())
}

func TestChat_MissingMessagesKey400(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*store.Profile{"user-1": visualProfile()}}
	h := newHandler(llm.NewMockProvider(), profiles, newFakeChats())

	rr := doChat(h, "user-1", `{}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.JSONEq(t, `{"error":"No messages provided"}`, rr.Body.String())
}

func TestChat_MalformedJSON400(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*store.Profile{"user-1": visualProfile()}}
	h := newHandler(llm.NewMockProvider(), profiles, newFakeChats())

	rr := doChat(h, "user-1", `{"messages": not json`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChat_BadRole400(t *testing.T) {
	profiles := &fakeProfiles{profiles: map[string]*store.Profile{"user-1": visualProfile()}}
	h := newHandler(llm.NewMockProvider(), profiles, newFakeChats())

	rr := doChat(h, "user-1", `{"messages":[{"role":"wizard","content":"hi"}]}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChat_UnknownProfile404(t *testing.T) {
	h := newHandler(llm.NewMockProvider(), &fakeProfiles{profiles: map[string]*store.Profile{}}, newFakeChats())

	rr := doChat(h, "ghost", `{"messages":[{"role":"user","content":"hi there"}]}`)

	require.Equal(t, http.StatusNotFound, rr.Code)
	require.JSONEq(t, `{"error":"User not found"}`, rr.Body.String())
}

func TestChat_ProfileLookupError500(t *testing.T) {
	h := newHandler(llm.NewMockProvider(), &fakeProfiles{err: errors.New("db down")}, newFakeChats())

	rr := doChat(h, "user-1", `{"messages":[{"role":"user","content":"hi there"}]}`)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	require.Contains(t, rr.Body.String(), "db down")
}

func TestChat_SuccessStreamsAndPersists(t *testing.T) {
	reply := "A derivative measures rate of change.\n- Review limits"
	mock := llm.NewMockProvider(llm.MockResponse{Text: reply})
	profiles := &fakeProfiles{profiles: map[string]*store.Profile{"user-1": visualProfile()}}
	chats := newFakeChats()
	h := newHandler(mock, profiles, chats)

	rr := doChat(h, "user-1", `{"messages":[{"role":"user","content":"What is a derivative?"}]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/plain; charset=utf-8", rr.Header().Get("Content-Type"))
	require.Equal(t, reply, rr.Body.String())

	// Preferences flow into the prompt.
	require.Contains(t, mock.LastCall().Prompt, "Learning style: visual")

	// The detached write carries the same user/message/response.
	select {
	case rec := <-chats.appended:
		require.Equal(t, "user-1", rec.UserID)
		require.Equal(t, "What is a derivative?", rec.Message)
		require.Equal(t, reply, rec.Response)
		require.Equal(t, "visual", rec.Personalization.LearningStyle)
		require.Equal(t, []string{"math"}, rec.Personalization.Interests)
	case <-time.After(2 * time.Second):
		t.Fatal("chat record never persisted")
	}
}

func TestChat_ProviderFailureStillStreamsApology(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	profiles := &fakeProfiles{profiles: map[string]*store.Profile{"user-1": visualProfile()}}
	chats := newFakeChats()
	h := newHandler(mock, profiles, chats)

	rr := doChat(h, "user-1", `{"messages":[{"role":"user","content":"hi there"}]}`)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Contains(t, rr.Body.String(), "I apologize")

	// Failed exchanges are not persisted.
	select {
	case rec := <-chats.appended:
		t.Fatalf("unexpected persist of failed exchange: %+v", rec)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRouter_ChatThroughSessionMiddleware(t *testing.T) {
	reply := "short answer"
	mock := llm.NewMockProvider(llm.MockResponse{Text: reply})
	profiles := &fakeProfiles{profiles: map[string]*store.Profile{"user-9": visualProfile()}}
	chats := newFakeChats()

	handler := New(Deps{
		Chat:           newHandler(mock, profiles, chats),
		Health:         NewHealthHandler(okPinger{}),
		Sessions:       &fakeSessions{tokens: map[string]string{"tok-9": "user-9"}},
		AllowedOrigins: []string{"*"},
	})

	// No token → 401 regardless of body.
	req := httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"messages":[{"role":"user","content":"hi there"}]}`))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// Valid bearer token → streamed reply.
	req = httptest.NewRequest(http.MethodPost, "/api/chat",
		strings.NewReader(`{"messages":[{"role":"user","content":"hi there"}]}`))
	req.Header.Set("Authorization", "Bearer tok-9")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, reply, rr.Body.String())
}

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type badPinger struct{}

func (badPinger) Ping(context.Context) error { return errors.New("no db") }

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler(okPinger{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	NewHealthHandler(badPinger{}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
}
