// Package session owns the mutable conversational state: the ordered
// message log, the active verbosity mode and the active model.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/fmorandi/chatai/internal/model"
)

var ErrInvalidVerbosity = errors.New("unknown verbosity mode")

// HistoryStore is the persistence medium the store serializes its
// message log to. Implementations must return ErrHistoryNotFound when
// the keyed history does not exist yet.
type HistoryStore interface {
	Save(ctx context.Context, key string, messages []model.Message) error
	Load(ctx context.Context, key string) ([]model.Message, error)
}

var ErrHistoryNotFound = errors.New("history does not exist")

// Store is the sole owner of one conversation's state. All mutations go
// through its mutex, so a single store is safe to share between the
// HTTP handlers serving the same session key.
type Store struct {
	mu        sync.Mutex
	messages  []model.Message
	verbosity model.Verbosity
	model     string
}

// NewStore seeds the conversation with the compact profile's system
// message, matching a fresh console session.
func NewStore(defaultModel string) *Store {
	verbosity := model.VerbosityCompact
	text, _ := ProfileText(verbosity)
	return &Store{
		messages:  []model.Message{{Role: model.RoleSystem, Content: text}},
		verbosity: verbosity,
		model:     defaultModel,
	}
}

func (s *Store) AppendUser(text string) {
	s.append(model.Message{Role: model.RoleUser, Content: text})
}

func (s *Store) AppendAssistant(text string) {
	s.append(model.Message{Role: model.RoleAssistant, Content: text})
}

func (s *Store) append(msg model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
}

// SetVerbosity switches the active profile and rewrites the leading
// system message to the profile text. Every subsequent request build
// sees the new mode.
func (s *Store) SetVerbosity(v model.Verbosity) error {
	text, ok := ProfileText(v)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidVerbosity, v)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verbosity = v
	s.messages[0] = model.Message{Role: model.RoleSystem, Content: text}
	return nil
}

func (s *Store) Verbosity() model.Verbosity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verbosity
}

// SetModel replaces the active model identifier. No validation happens
// here: the remote service is the source of truth for valid names.
func (s *Store) SetModel(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model = name
}

func (s *Store) Model() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.model
}

// Clear truncates the log back to the single system message. Verbosity
// and model are left as they are.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []model.Message{s.messages[0]}
}

// Snapshot returns a deep copy of the session, so request building and
// persistence never observe a concurrent mutation.
func (s *Store) Snapshot() model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := make([]model.Message, len(s.messages))
	copy(messages, s.messages)
	return model.Session{
		Messages:  messages,
		Verbosity: s.verbosity,
		Model:     s.model,
	}
}

// Save serializes the message log to the persistence medium. Verbosity
// and model are runtime state and are not persisted.
func (s *Store) Save(ctx context.Context, history HistoryStore, key string) error {
	snap := s.Snapshot()
	if err := history.Save(ctx, key, snap.Messages); err != nil {
		return fmt.Errorf("failed to save history %s: %w", key, err)
	}
	return nil
}

// Load replaces the message log with the persisted one. A missing
// history is not an error: the current session stays untouched and the
// caller gets ErrHistoryNotFound to report as an informational no-op.
// A loaded log that is empty or does not start with a system message is
// repaired by prepending one synthesized from the current verbosity.
func (s *Store) Load(ctx context.Context, history HistoryStore, key string) error {
	messages, err := history.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrHistoryNotFound) {
			return ErrHistoryNotFound
		}
		return fmt.Errorf("failed to load history %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(messages) == 0 || messages[0].Role != model.RoleSystem {
		text, _ := ProfileText(s.verbosity)
		messages = append([]model.Message{{Role: model.RoleSystem, Content: text}}, messages...)
	}
	s.messages = messages
	return nil
}
