package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/auth"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/llm"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/store"
	"github.com/Tekmindlabs/Aivy-Dojo/internal/tutor"
)

// maxBodyBytes caps the chat request body size.
const maxBodyBytes = 1 << 20

// persistTimeout bounds the background chat write.
const persistTimeout = 10 * time.Second

// streamChunkSize is how much completion text is written per flush.
const streamChunkSize = 512

// ChatHandler serves POST /api/chat.
type ChatHandler struct {
	agent    *tutor.Agent
	profiles store.ProfileRepo
	chats    store.ChatRepo
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(agent *tutor.Agent, profiles store.ProfileRepo, chats store.ChatRepo) *ChatHandler {
	return &ChatHandler{agent: agent, profiles: profiles, chats: chats}
}

type chatRequest struct {
	Messages []tutor.Message `json:"messages"`
}

// ServeHTTP handles one chat submission: authenticate, validate, look up
// preferences, run the tutoring pipeline, kick off the best-effort
// persist, and stream the reply text back.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	req, errMsg := decodeChatRequest(r)
	if errMsg != "" {
		Error(w, http.StatusBadRequest, errMsg)
		return
	}

	profile, err := h.profiles.Get(r.Context(), userID)
	if err != nil {
		slog.Error("profile lookup failed", "user_id", userID, "error", err)
		Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if profile == nil {
		Error(w, http.StatusNotFound, "User not found")
		return
	}

	tutorReq := tutor.Request{
		Messages: req.Messages,
		Context: tutor.Context{
			LearningStyle: profile.LearningStyle,
			Difficulty:    tutor.Difficulty(profile.DifficultyPreference),
			Interests:     profile.Interests,
		},
	}

	resp := h.agent.Process(llm.WithPurpose(r.Context(), "tutor-chat"), tutorReq)

	if resp.Success {
		h.persistAsync(r.Context(), userID, tutorReq.Question(), resp.ResponseText, profile)
	}

	streamText(w, resp.ResponseText)
}

// decodeChatRequest parses and schema-validates the request body.
// Returns a non-empty message on any client error.
func decodeChatRequest(r *http.Request) (chatRequest, string) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return chatRequest{}, "failed to read request body"
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return chatRequest{}, "invalid JSON body"
	}

	if err := compiledChatSchema.Validate(doc); err != nil {
		// Distinguish the common case for a friendlier message.
		var probe chatRequest
		if json.Unmarshal(body, &probe) == nil && len(probe.Messages) == 0 {
			return chatRequest{}, "No messages provided"
		}
		return chatRequest{}, "invalid request body: " + err.Error()
	}

	var req chatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return chatRequest{}, "invalid request body"
	}

	return req, ""
}

// persistAsync writes the exchange in a detached goroutine. The write
// context is decoupled from the request so a client disconnect can't
// cancel it, and a failure is logged, never surfaced.
func (h *ChatHandler) persistAsync(ctx context.Context, userID, message, response string, profile *store.Profile) {
	rec := store.ChatRecord{
		UserID:   userID,
		Message:  message,
		Response: response,
		Personalization: store.Personalization{
			LearningStyle: profile.LearningStyle,
			Difficulty:    profile.DifficultyPreference,
			Interests:     profile.Interests,
		},
	}

	bgCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	go func() {
		defer cancel()
		if err := h.chats.Append(bgCtx, rec); err != nil {
			slog.Error("failed to save chat record", "user_id", userID, "error", err)
		}
	}()
}

// streamText writes the reply as a chunked text/plain body, flushing
// after each chunk.
func streamText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)
	for off := 0; off < len(text); off += streamChunkSize {
		end := min(off+streamChunkSize, len(text))
		if _, err := io.WriteString(w, text[off:end]); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
}

// HealthHandler serves GET /api/health.
type HealthHandler struct {
	pinger interface {
		Ping(ctx context.Context) error
	}
}

// NewHealthHandler creates a HealthHandler over anything with a Ping.
func NewHealthHandler(pinger interface {
	Ping(ctx context.Context) error
}) *HealthHandler {
	return &HealthHandler{pinger: pinger}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		Error(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
