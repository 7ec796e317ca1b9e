// Package tokencount estimates how many tokens a message history costs
// against an OpenAI-compatible model.
package tokencount

import (
	"fmt"

	"github.com/fmorandi/chatai/internal/model"
	"github.com/pkoukk/tiktoken-go"
)

// Chat-format framing costs a few tokens per message on top of the
// content itself.
const tokensPerMessage = 4

const fallbackEncoding = "cl100k_base"

// Count returns the approximate token footprint of a message history.
// Models unknown to tiktoken fall back to the cl100k_base encoding,
// which keeps the estimate usable for OpenAI-compatible services that
// expose their own model names.
func Count(messages []model.Message, modelName string) (int, error) {
	enc, err := tiktoken.EncodingForModel(modelName)
	if err != nil {
		enc, err = tiktoken.GetEncoding(fallbackEncoding)
		if err != nil {
			return 0, fmt.Errorf("failed to get fallback encoding: %w", err)
		}
	}

	total := 3 // reply priming
	for _, msg := range messages {
		total += tokensPerMessage
		total += len(enc.Encode(string(msg.Role), nil, nil))
		total += len(enc.Encode(msg.Content, nil, nil))
	}
	return total, nil
}
