// Package key_value persists message histories in redis, for
// deployments where the HTTP surface runs without a writable disk.
package key_value

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fmorandi/chatai/internal/model"
	"github.com/fmorandi/chatai/internal/session"
	"github.com/redis/go-redis/v9"
)

type messageInternal struct {
	Role    model.Role `json:"role"`
	Content string     `json:"content"`
}

type HistoryStore struct {
	rdb *redis.Client
}

func NewHistoryStore(rdb *redis.Client) *HistoryStore {
	return &HistoryStore{rdb: rdb}
}

func (s *HistoryStore) Save(ctx context.Context, key string, messages []model.Message) error {
	internal := make([]messageInternal, 0, len(messages))
	for _, msg := range messages {
		internal = append(internal, messageInternal{Role: msg.Role, Content: msg.Content})
	}
	data, err := json.Marshal(internal)
	if err != nil {
		return fmt.Errorf("failed to marshal history %s: %w", key, err)
	}
	if err = s.rdb.Set(ctx, historyKey(key), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save history %s: %w", key, err)
	}
	return nil
}

func (s *HistoryStore) Load(ctx context.Context, key string) ([]model.Message, error) {
	raw, err := s.rdb.Get(ctx, historyKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrHistoryNotFound
		}
		return nil, fmt.Errorf("failed to get history %s: %w", key, err)
	}
	var internal []messageInternal
	if err = json.Unmarshal([]byte(raw), &internal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal history %s: %w", key, err)
	}
	messages := make([]model.Message, 0, len(internal))
	for _, msg := range internal {
		messages = append(messages, model.Message{Role: msg.Role, Content: msg.Content})
	}
	return messages, nil
}

func historyKey(key string) string {
	return fmt.Sprintf("history_%v", key)
}
