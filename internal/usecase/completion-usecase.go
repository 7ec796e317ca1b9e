package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/fmorandi/chatai/config"
	"github.com/fmorandi/chatai/internal/model"
	"github.com/sashabaranov/go-openai"
)

// ReplyPlaceholder is returned when the service answers with no choices
// at all; the turn still completes instead of failing.
const ReplyPlaceholder = "(nessuna risposta)"

// TransportError reports a failed remote call. StatusCode is zero for
// network-level faults that never produced an HTTP response.
type TransportError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// CompletionUsecase sends completion requests to an OpenAI-compatible
// endpoint. It holds no conversational state.
type CompletionUsecase struct {
	client *openai.Client
}

func NewCompletionUsecase(cfg config.Completion) *CompletionUsecase {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	return &CompletionUsecase{
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// Send performs the remote call and returns the raw reply text of the
// first choice. It never retries; callers decide what a failed turn
// means for session state.
func (c *CompletionUsecase) Send(ctx context.Context, req model.CompletionRequest) (string, error) {
	outbound := openai.ChatCompletionRequest{
		Model:       req.Model,
		Temperature: req.Temperature,
		Messages:    toWireMessages(req.Messages),
	}

	resp, err := c.client.CreateChatCompletion(ctx, outbound)
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", &TransportError{
				StatusCode: apiErr.HTTPStatusCode,
				Body:       apiErr.Message,
				Err:        err,
			}
		}
		return "", &TransportError{Err: err}
	}

	if len(resp.Choices) == 0 {
		return ReplyPlaceholder, nil
	}
	return resp.Choices[0].Message.Content, nil
}

func toWireMessages(messages []model.Message) []openai.ChatCompletionMessage {
	wire := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		wire = append(
			wire, openai.ChatCompletionMessage{
				Role:    string(msg.Role),
				Content: msg.Content,
			},
		)
	}
	return wire
}
