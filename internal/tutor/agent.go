package tutor

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/llm"
)

// apologyText is returned verbatim whenever a request fails for any reason.
const apologyText = "I apologize, but I encountered an error. Could you please rephrase your question?"

// successConfidence is a fixed placeholder, not a computed estimate.
const successConfidence = 0.9

const (
	defaultMaxTokens   = 1024
	defaultTemperature = 0.7
)

// Agent runs the tutoring pipeline against a completion provider.
// Each Process call is self-contained; the Agent holds no per-request
// state and is safe for concurrent use.
type Agent struct {
	provider llm.Provider
}

// NewAgent creates an Agent backed by the given provider.
func NewAgent(provider llm.Provider) *Agent {
	return &Agent{provider: provider}
}

// Process runs one tutoring request to completion. It never returns an
// error: any failure — validation, provider, anything — is converted into
// a Success:false Response carrying the fixed apology text and a zero
// confidence score.
func (a *Agent) Process(ctx context.Context, req Request) Response {
	start := time.Now()

	text, err := a.generate(ctx, req)
	if err != nil {
		slog.Error("tutor agent error", "error", err)
		return Response{
			Success:      false,
			ResponseText: apologyText,
			Timestamp:    time.Now().UTC(),
			Metadata: Metadata{
				ProcessingTimeMs:   time.Since(start).Milliseconds(),
				ConfidenceScore:    0,
				SuggestedNextSteps: []string{},
			},
		}
	}

	return Response{
		Success:      true,
		ResponseText: text,
		Timestamp:    time.Now().UTC(),
		Metadata: Metadata{
			ProcessingTimeMs:   time.Since(start).Milliseconds(),
			ConfidenceScore:    successConfidence,
			SuggestedNextSteps: ExtractNextSteps(text),
			Topic:              req.Context.Topic,
		},
	}
}

func (a *Agent) generate(ctx context.Context, req Request) (string, error) {
	if err := validate(req); err != nil {
		return "", err
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		Prompt:      BuildPrompt(req.Messages, req.Context),
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}

func validate(req Request) error {
	if len(req.Messages) == 0 {
		return errors.New("no messages provided")
	}
	if strings.TrimSpace(req.Question()) == "" {
		return errors.New("invalid message format: empty content")
	}
	return nil
}
