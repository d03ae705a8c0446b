package tutor

import (
	"errors"
	"strings"
	"testing"

	"github.com/Tekmindlabs/Aivy-Dojo/internal/llm"
)

func userRequest(content string) Request {
	return Request{
		Messages: []Message{{Role: RoleUser, Content: content}},
	}
}

func TestAgent_SuccessShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "A derivative measures rate of change.\n- Review limits\n- Try the power rule",
	})
	agent := NewAgent(mock)

	resp := agent.Process(t.Context(), userRequest("What is a derivative?"))

	if !resp.Success {
		t.Fatal("expected success")
	}
	if !strings.Contains(resp.ResponseText, "rate of change") {
		t.Fatalf("unexpected response text: %s", resp.ResponseText)
	}
	if resp.Metadata.ConfidenceScore != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", resp.Metadata.ConfidenceScore)
	}
	if resp.Metadata.ProcessingTimeMs < 0 {
		t.Fatalf("negative processing time: %d", resp.Metadata.ProcessingTimeMs)
	}
	if got := resp.Metadata.SuggestedNextSteps; len(got) != 2 {
		t.Fatalf("expected 2 next steps, got %v", got)
	}
	if resp.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}
}

func TestAgent_ProviderErrorYieldsApology(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("upstream down")},
	})
	agent := NewAgent(mock)

	resp := agent.Process(t.Context(), userRequest("anything"))

	if resp.Success {
		t.Fatal("expected failure")
	}
	if !strings.Contains(resp.ResponseText, "I apologize") {
		t.Fatalf("expected apology text, got: %s", resp.ResponseText)
	}
	if resp.Metadata.ConfidenceScore != 0 {
		t.Fatalf("expected confidence 0, got %v", resp.Metadata.ConfidenceScore)
	}
	if resp.Metadata.ProcessingTimeMs < 0 {
		t.Fatalf("negative processing time: %d", resp.Metadata.ProcessingTimeMs)
	}
	if len(resp.Metadata.SuggestedNextSteps) != 0 {
		t.Fatalf("expected no next steps, got %v", resp.Metadata.SuggestedNextSteps)
	}
}

func TestAgent_NoMessagesFailsGracefully(t *testing.T) {
	mock := llm.NewMockProvider()
	agent := NewAgent(mock)

	resp := agent.Process(t.Context(), Request{})

	if resp.Success {
		t.Fatal("expected failure for empty request")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("provider should not be called, got %d calls", mock.CallCount())
	}
}

func TestAgent_EmptyLastContentFailsGracefully(t *testing.T) {
	mock := llm.NewMockProvider()
	agent := NewAgent(mock)

	resp := agent.Process(t.Context(), userRequest("   "))

	if resp.Success {
		t.Fatal("expected failure for blank question")
	}
	if mock.CallCount() != 0 {
		t.Fatalf("provider should not be called, got %d calls", mock.CallCount())
	}
}

func TestAgent_PromptCarriesQuestionAndPreferences(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "answer"})
	agent := NewAgent(mock)

	req := userRequest("Explain recursion")
	req.Context.LearningStyle = "visual"

	agent.Process(t.Context(), req)

	sent := mock.LastCall()
	if !strings.Contains(sent.Prompt, "Explain recursion") {
		t.Fatalf("prompt missing question: %s", sent.Prompt)
	}
	if !strings.Contains(sent.Prompt, "Learning style: visual") {
		t.Fatalf("prompt missing preferences: %s", sent.Prompt)
	}
}

func TestAgent_TopicEchoedInMetadata(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "answer"})
	agent := NewAgent(mock)

	req := userRequest("what is calculus")
	req.Context.Topic = "calculus"

	resp := agent.Process(t.Context(), req)

	if resp.Metadata.Topic != "calculus" {
		t.Fatalf("expected topic in metadata, got %q", resp.Metadata.Topic)
	}
}
