package usecase

import (
	"context"
	"fmt"

	"github.com/fmorandi/chatai/config"
	"github.com/fmorandi/chatai/internal/classifier"
	"github.com/fmorandi/chatai/internal/model"
	"github.com/fmorandi/chatai/internal/sanitize"
	"github.com/fmorandi/chatai/internal/session"
	"github.com/fmorandi/chatai/pkg/log"
	"github.com/fmorandi/chatai/pkg/tokencount"
	"go.uber.org/zap"
)

// Transport performs the remote completion call for a fully-built
// request. It is the engine's only blocking collaborator.
type Transport interface {
	Send(ctx context.Context, req model.CompletionRequest) (string, error)
}

type ChatUsecaseDeps struct {
	Transport Transport
	History   session.HistoryStore
	// Counter overrides the tiktoken-based default, mainly in tests.
	Counter TokenCounter
}

// ChatUsecase drives one conversational turn end to end: classify,
// adapt verbosity, append the user message, send, sanitize, append the
// assistant message.
type ChatUsecase struct {
	ChatUsecaseDeps
	cfg config.History
}

func NewChatUsecase(deps ChatUsecaseDeps, cfg config.History) *ChatUsecase {
	if deps.Counter == nil {
		deps.Counter = tokencount.Count
	}
	return &ChatUsecase{
		ChatUsecaseDeps: deps,
		cfg:             cfg,
	}
}

// ProcessTurn runs one turn against the given session. The question
// category overrides the active verbosity for this and later turns:
// theory questions force verbose, math and code questions force
// compact, whatever the operator set by hand. The user message is
// appended before the remote call, so a failed turn keeps the user
// side of the exchange and any verbosity switch; only the assistant
// message is missing. Extracted code is returned to the caller but
// never stored, so re-sent histories carry no code fences.
func (c *ChatUsecase) ProcessTurn(ctx context.Context, store *session.Store, text string) (model.CompletionResult, error) {
	category := classifier.Classify(text)
	switch {
	case category == classifier.CategoryTheory && store.Verbosity() != model.VerbosityVerbose:
		if err := store.SetVerbosity(model.VerbosityVerbose); err != nil {
			return model.CompletionResult{}, err
		}
		log.L().Debug("auto verbosity switch", zap.String("category", string(category)), zap.String("verbosity", "verbose"))
	case (category == classifier.CategoryMath || category == classifier.CategoryCode) && store.Verbosity() != model.VerbosityCompact:
		if err := store.SetVerbosity(model.VerbosityCompact); err != nil {
			return model.CompletionResult{}, err
		}
		log.L().Debug("auto verbosity switch", zap.String("category", string(category)), zap.String("verbosity", "compact"))
	}

	store.AppendUser(text)

	req := BuildCompletionRequest(store.Snapshot(), c.cfg.TokenLimit, c.Counter)
	raw, err := c.Transport.Send(ctx, req)
	if err != nil {
		return model.CompletionResult{}, fmt.Errorf("failed to send completion request: %w", err)
	}

	prose, code := sanitize.Clean(raw)
	store.AppendAssistant(prose)
	return model.CompletionResult{Prose: prose, Code: code}, nil
}

// SetVerbosity switches the session's verbosity by tag name.
func (c *ChatUsecase) SetVerbosity(store *session.Store, tag string) error {
	v, ok := model.ParseVerbosity(tag)
	if !ok {
		return fmt.Errorf("%w: %q", session.ErrInvalidVerbosity, tag)
	}
	return store.SetVerbosity(v)
}

func (c *ChatUsecase) SetModel(store *session.Store, name string) {
	store.SetModel(name)
}

func (c *ChatUsecase) Clear(store *session.Store) {
	store.Clear()
}

func (c *ChatUsecase) Save(ctx context.Context, store *session.Store, key string) error {
	return store.Save(ctx, c.History, key)
}

// Load pulls the persisted history into the session. ErrHistoryNotFound
// means there was nothing to load and the session is untouched; callers
// report that as a fresh start, not a failure.
func (c *ChatUsecase) Load(ctx context.Context, store *session.Store, key string) error {
	return store.Load(ctx, c.History, key)
}
