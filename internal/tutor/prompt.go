package tutor

import (
	"fmt"
	"strings"
)

// contextWindow is the number of messages preceding the current question
// that are included as short-term context.
const contextWindow = 3

const promptScaffold = `Provide a response that:
1. Directly answers the question
2. Explains concepts clearly with examples when needed
3. Uses a supportive and encouraging tone
4. Checks for understanding
5. Suggests next steps or related topics to explore`

// BuildPrompt renders the full prompt for the completion provider: an
// optional preference block, the last few messages as context, the
// current question, and a fixed instructional scaffold.
//
// Pure and deterministic; callers are expected to have validated that
// messages is non-empty.
func BuildPrompt(messages []Message, tctx Context) string {
	var b strings.Builder

	b.WriteString("Act as a knowledgeable and supportive AI tutor.\n")

	if block := preferenceBlock(tctx); block != "" {
		b.WriteString("\nUser preferences:\n")
		b.WriteString(block)
	}

	b.WriteString("\nPrevious context:\n")
	for _, m := range contextMessages(messages) {
		b.WriteString(fmt.Sprintf("%s: %s\n", m.Role, m.Content))
	}

	b.WriteString("\nCurrent question:\n")
	if len(messages) > 0 {
		b.WriteString(messages[len(messages)-1].Content)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(promptScaffold)

	return b.String()
}

// contextMessages returns up to contextWindow messages ending at the
// current (last) message, mirroring the slice(-3) window of the chat
// history that precedes the question.
func contextMessages(messages []Message) []Message {
	if len(messages) <= contextWindow {
		return messages
	}
	return messages[len(messages)-contextWindow:]
}

func preferenceBlock(tctx Context) string {
	var b strings.Builder

	if tctx.LearningStyle != "" {
		b.WriteString(fmt.Sprintf("- Learning style: %s\n", tctx.LearningStyle))
	}
	if tctx.Difficulty != "" {
		b.WriteString(fmt.Sprintf("- Difficulty level: %s\n", tctx.Difficulty))
	}
	if len(tctx.Interests) > 0 {
		b.WriteString(fmt.Sprintf("- Interests: %s\n", strings.Join(tctx.Interests, ", ")))
	}
	if tctx.Topic != "" {
		b.WriteString(fmt.Sprintf("- Topic: %s\n", tctx.Topic))
	}

	return b.String()
}
