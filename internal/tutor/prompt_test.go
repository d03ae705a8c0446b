package tutor

import (
	"fmt"
	"strings"
	"testing"
)

func TestBuildPrompt_ContainsQuestionVerbatim(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "What is a derivative?"},
	}

	prompt := BuildPrompt(messages, Context{})

	if !strings.Contains(prompt, "What is a derivative?") {
		t.Fatalf("prompt missing question: %s", prompt)
	}
	if !strings.Contains(prompt, "Current question:") {
		t.Fatalf("prompt missing question section: %s", prompt)
	}
	if !strings.Contains(prompt, "Directly answers the question") {
		t.Fatalf("prompt missing scaffold: %s", prompt)
	}
}

func TestBuildPrompt_WindowsLastThreeMessages(t *testing.T) {
	var messages []Message
	for i := 1; i <= 6; i++ {
		role := RoleUser
		if i%2 == 0 {
			role = RoleAssistant
		}
		messages = append(messages, Message{Role: role, Content: fmt.Sprintf("msg-%d", i)})
	}

	prompt := BuildPrompt(messages, Context{})

	for _, want := range []string{"msg-4", "msg-5", "msg-6"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing windowed message %s", want)
		}
	}
	for _, old := range []string{"msg-1", "msg-2", "msg-3"} {
		if strings.Contains(prompt, old) {
			t.Fatalf("prompt contains message outside window: %s", old)
		}
	}
	if !strings.Contains(prompt, "assistant: msg-6") {
		t.Fatalf("context lines not formatted as role: content\n%s", prompt)
	}
}

func TestBuildPrompt_FewerThanWindowUsesAll(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "first"},
		{Role: RoleAssistant, Content: "second"},
	}

	prompt := BuildPrompt(messages, Context{})

	if !strings.Contains(prompt, "user: first") || !strings.Contains(prompt, "assistant: second") {
		t.Fatalf("short history not fully included:\n%s", prompt)
	}
}

func TestBuildPrompt_PreferenceBlock(t *testing.T) {
	messages := []Message{{Role: RoleUser, Content: "explain fractions"}}
	tctx := Context{
		LearningStyle: "visual",
		Difficulty:    "moderate",
		Interests:     []string{"math", "music"},
	}

	prompt := BuildPrompt(messages, tctx)

	if !strings.Contains(prompt, "Learning style: visual") {
		t.Fatalf("missing learning style:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Difficulty level: moderate") {
		t.Fatalf("missing difficulty:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Interests: math, music") {
		t.Fatalf("missing interests:\n%s", prompt)
	}
}

func TestBuildPrompt_NoPreferencesOmitsBlock(t *testing.T) {
	prompt := BuildPrompt([]Message{{Role: RoleUser, Content: "hi there"}}, Context{})

	if strings.Contains(prompt, "User preferences:") {
		t.Fatalf("empty preference block should be omitted:\n%s", prompt)
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	messages := []Message{
		{Role: RoleUser, Content: "a"},
		{Role: RoleAssistant, Content: "b"},
		{Role: RoleUser, Content: "c"},
	}
	tctx := Context{LearningStyle: "visual", Interests: []string{"math"}}

	first := BuildPrompt(messages, tctx)
	second := BuildPrompt(messages, tctx)

	if first != second {
		t.Fatal("BuildPrompt is not deterministic")
	}
}
