package usecase

import "github.com/fmorandi/chatai/internal/model"

// Temperature is fixed for every request; the service's own default
// governs the maximum token count since no limit is sent.
const Temperature float32 = 0.5

// TokenCounter reports the token footprint of a history. It is injected
// so the windowing policy is testable without the real encoder.
type TokenCounter func(messages []model.Message, modelName string) (int, error)

// BuildCompletionRequest turns a session snapshot into the outbound
// payload. With a zero budget the entire history goes out unmodified:
// requests grow with conversation length, and bounding that is the
// caller's choice via the token budget. With a positive budget the
// oldest non-system messages are dropped until the count fits.
func BuildCompletionRequest(snap model.Session, tokenBudget int, count TokenCounter) model.CompletionRequest {
	messages := snap.Messages
	if tokenBudget > 0 && count != nil {
		messages = windowMessages(messages, snap.Model, tokenBudget, count)
	}
	return model.CompletionRequest{
		Model:       snap.Model,
		Messages:    messages,
		Temperature: Temperature,
	}
}

func windowMessages(messages []model.Message, modelName string, budget int, count TokenCounter) []model.Message {
	for len(messages) > 1 {
		total, err := count(messages, modelName)
		if err != nil {
			// An uncountable history is sent whole rather than guessed at.
			return messages
		}
		if total <= budget {
			break
		}
		// The leading system message always survives the window.
		messages = append([]model.Message{messages[0]}, messages[2:]...)
	}
	return messages
}
