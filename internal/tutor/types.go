// Package tutor implements the tutoring pipeline: prompt construction,
// completion via an LLM provider, and next-step extraction.
package tutor

import "time"

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single turn in a conversation. Order is significant:
// the most recent message comes last.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Difficulty is the requested depth of explanation.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Context carries optional caller preferences that shape the prompt.
// Zero values mean "no preference".
type Context struct {
	Topic         string
	Difficulty    Difficulty
	LearningStyle string
	Interests     []string
}

// Request is one invocation of the tutoring pipeline: the full message
// history plus preferences. Built per call and discarded afterwards.
type Request struct {
	Messages []Message
	Context  Context
}

// Metadata describes how a response was produced.
type Metadata struct {
	ProcessingTimeMs int64 `json:"processingTimeMs"`

	// ConfidenceScore is a fixed placeholder: 0.9 on success, 0 on
	// failure. It is not a computed estimate.
	ConfidenceScore float64 `json:"confidenceScore"`

	SuggestedNextSteps []string `json:"suggestedNextSteps"`
	Topic              string   `json:"topic,omitempty"`
}

// Response is the outcome of one tutoring request. Success is false when
// anything in the pipeline failed; ResponseText then holds a fixed
// apology rather than model output.
type Response struct {
	Success      bool      `json:"success"`
	ResponseText string    `json:"responseText"`
	Timestamp    time.Time `json:"timestamp"`
	Metadata     Metadata  `json:"metadata"`
}

// Question returns the content of the last message, the one the tutor
// is being asked to answer. Empty when there are no messages.
func (r Request) Question() string {
	if len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[len(r.Messages)-1].Content
}
