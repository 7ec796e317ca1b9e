// Package file persists message histories as pretty-printed JSON files,
// the format the console surface has always written.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fmorandi/chatai/internal/model"
	"github.com/fmorandi/chatai/internal/session"
)

type messageInternal struct {
	Role    model.Role `json:"role"`
	Content string     `json:"content"`
}

type HistoryStore struct {
	path string
}

// NewHistoryStore writes histories next to the given base path. The
// default session key uses the path as-is; other keys get a suffix
// before the extension, so sessions never clobber each other.
func NewHistoryStore(path string) *HistoryStore {
	return &HistoryStore{path: path}
}

func (s *HistoryStore) Save(_ context.Context, key string, messages []model.Message) error {
	internal := make([]messageInternal, 0, len(messages))
	for _, msg := range messages {
		internal = append(internal, messageInternal{Role: msg.Role, Content: msg.Content})
	}
	data, err := json.MarshalIndent(internal, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history %s: %w", key, err)
	}
	if err = os.WriteFile(s.pathFor(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write history %s: %w", key, err)
	}
	return nil
}

func (s *HistoryStore) Load(_ context.Context, key string) ([]model.Message, error) {
	data, err := os.ReadFile(s.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, session.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to read history %s: %w", key, err)
	}
	var internal []messageInternal
	if err = json.Unmarshal(data, &internal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history %s: %w", key, err)
	}
	messages := make([]model.Message, 0, len(internal))
	for _, msg := range internal {
		messages = append(messages, model.Message{Role: msg.Role, Content: msg.Content})
	}
	return messages, nil
}

func (s *HistoryStore) pathFor(key string) string {
	if key == "" || key == session.DefaultKey {
		return s.path
	}
	ext := filepath.Ext(s.path)
	return strings.TrimSuffix(s.path, ext) + "_" + key + ext
}
