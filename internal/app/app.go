// Package app wires configuration into a ready-to-use engine for the
// console and HTTP surfaces.
package app

import (
	"fmt"

	"github.com/fmorandi/chatai/config"
	"github.com/fmorandi/chatai/internal/session"
	file_storage "github.com/fmorandi/chatai/internal/storage/file"
	key_value "github.com/fmorandi/chatai/internal/storage/key-value"
	"github.com/fmorandi/chatai/internal/usecase"
	"github.com/redis/go-redis/v9"
)

// Engine bundles everything a presentation surface needs.
type Engine struct {
	Chat     *usecase.ChatUsecase
	Sessions *session.Registry
	Model    string
}

func NewEngine(cfg *config.Config) (*Engine, error) {
	history, err := newHistoryStore(cfg)
	if err != nil {
		return nil, err
	}

	chat := usecase.NewChatUsecase(
		usecase.ChatUsecaseDeps{
			Transport: usecase.NewCompletionUsecase(cfg.Completion),
			History:   history,
		}, cfg.History,
	)

	return &Engine{
		Chat:     chat,
		Sessions: session.NewRegistry(cfg.Completion.Model),
		Model:    cfg.Completion.Model,
	}, nil
}

func newHistoryStore(cfg *config.Config) (session.HistoryStore, error) {
	switch cfg.History.Backend {
	case "file":
		return file_storage.NewHistoryStore(cfg.History.Path), nil
	case "redis":
		rdb := redis.NewClient(
			&redis.Options{
				Addr: cfg.Redis.Endpoint,
			},
		)
		return key_value.NewHistoryStore(rdb), nil
	default:
		return nil, fmt.Errorf("unknown history backend %q", cfg.History.Backend)
	}
}
