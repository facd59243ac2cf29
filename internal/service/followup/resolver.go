// Package followup condenses the previous assistant answer into a short
// clarification when the generative delegate cannot be reached.
package followup

import (
	"fmt"
	"strings"

	"github.com/sandevgo/finchbot/internal/core"
)

// A previous answer at most this long and with at most one sentence
// terminator is quoted whole instead of being condensed.
const shortAnswerLimit = 160

// Resolve builds a local clarification from the conversation history.
// It never returns an empty string.
func Resolve(history []core.Turn) string {
	prevAnswer := LastAssistantText(history)
	prevUser := LastUserText(history)
	return briefExplanation(prevAnswer, prevUser)
}

// LastAssistantText returns the most recent non-empty assistant turn,
// or "" when there is none.
func LastAssistantText(history []core.Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == core.RoleAssistant && history[i].Content != "" {
			return history[i].Content
		}
	}
	return ""
}

// LastUserText returns the most recent non-empty user turn, or "".
func LastUserText(history []core.Turn) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == core.RoleUser && history[i].Content != "" {
			return history[i].Content
		}
	}
	return ""
}

func briefExplanation(prevAnswer, prevUser string) string {
	if prevAnswer == "" {
		return "I can explain — could you repeat the part you want clarified?"
	}

	if len(prevAnswer) <= shortAnswerLimit && strings.Count(prevAnswer, ".") <= 1 {
		return "In short: " + prevAnswer
	}

	sentence, _, _ := strings.Cut(prevAnswer, ".")
	sentence = strings.TrimSpace(sentence)
	if sentence == "" {
		return "Briefly: it follows from the previous result."
	}

	if prevUser == "" {
		return fmt.Sprintf("Briefly: %s.", sentence)
	}
	return fmt.Sprintf("Briefly: %s. (Related to your earlier message: %q.)", sentence, prevUser)
}
