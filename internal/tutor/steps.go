package tutor

import "strings"

// maxNextSteps caps how many suggested next steps are surfaced.
const maxNextSteps = 3

// ExtractNextSteps scans a model reply for bullet lines ("- " or "* "
// after trimming) and returns up to three of them, in order of
// appearance, with the bullet marker stripped.
//
// This is a heuristic over freeform text: a reply with no bullets yields
// an empty slice, never an error.
func ExtractNextSteps(responseText string) []string {
	steps := []string{}

	for _, line := range strings.Split(responseText, "\n") {
		trimmed := strings.TrimSpace(line)

		var step string
		switch {
		case strings.HasPrefix(trimmed, "- "):
			step = strings.TrimPrefix(trimmed, "- ")
		case strings.HasPrefix(trimmed, "* "):
			step = strings.TrimPrefix(trimmed, "* ")
		default:
			continue
		}

		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}

		steps = append(steps, step)
		if len(steps) == maxNextSteps {
			break
		}
	}

	return steps
}
