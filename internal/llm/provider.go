// Package llm abstracts hosted text-generation providers behind a single
// capability interface so the tutoring pipeline is not coupled to any one
// vendor SDK.
package llm

import "context"

// Provider is the completion boundary: given a prompt, produce text.
type Provider interface {
	// Generate sends a prompt to the model and returns its completion
	// verbatim. No post-processing is applied to the returned text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System is an optional system prompt setting the model's role.
	System string

	// Prompt is the fully rendered user prompt. Conversation windowing
	// and templating happen upstream; providers send this as-is.
	Prompt string

	// MaxTokens is the maximum number of tokens in the completion.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Response holds the model's output.
type Response struct {
	// Text is the generated completion.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
