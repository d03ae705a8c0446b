package store

import "context"

// Profile is the read-only slice of a user record the tutor cares about.
type Profile struct {
	UserID               string
	LearningStyle        string
	DifficultyPreference string
	Interests            []string
}

// ProfileRepo looks up user preferences by opaque user ID.
type ProfileRepo interface {
	// Get returns the profile for userID, or nil if no such user exists.
	Get(ctx context.Context, userID string) (*Profile, error)
}

// SessionRepo resolves opaque session tokens to user IDs. Sessions are
// issued by an external system; this service only reads them.
type SessionRepo interface {
	// UserIDForToken returns the user ID for a valid token, or "" when
	// the token is unknown or expired.
	UserIDForToken(ctx context.Context, token string) (string, error)
}

// Personalization is the preference snapshot stored alongside each
// exchange, capturing what the reply was tailored to at the time.
type Personalization struct {
	LearningStyle string   `json:"learningStyle,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Interests     []string `json:"interests,omitempty"`
}

// ChatRecord is one completed exchange to persist.
type ChatRecord struct {
	UserID          string
	Message         string
	Response        string
	Personalization Personalization
}

// ChatRepo appends completed exchanges. Writes are best-effort from the
// caller's point of view: the response path never waits on them.
type ChatRepo interface {
	Append(ctx context.Context, rec ChatRecord) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
