package session

import (
	"context"
	"errors"
	"testing"

	"github.com/fmorandi/chatai/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHistory struct {
	saved   map[string][]model.Message
	loadErr error
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{saved: make(map[string][]model.Message)}
}

func (f *fakeHistory) Save(_ context.Context, key string, messages []model.Message) error {
	stored := make([]model.Message, len(messages))
	copy(stored, messages)
	f.saved[key] = stored
	return nil
}

func (f *fakeHistory) Load(_ context.Context, key string) ([]model.Message, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	messages, ok := f.saved[key]
	if !ok {
		return nil, ErrHistoryNotFound
	}
	return messages, nil
}

func TestNewStoreSeedsSystemMessage(t *testing.T) {
	s := NewStore("sonar")
	snap := s.Snapshot()

	require.Len(t, snap.Messages, 1)
	assert.Equal(t, model.RoleSystem, snap.Messages[0].Role)
	assert.Equal(t, model.VerbosityCompact, snap.Verbosity)
	assert.Equal(t, "sonar", snap.Model)

	compactText, ok := ProfileText(model.VerbosityCompact)
	require.True(t, ok)
	assert.Equal(t, compactText, snap.Messages[0].Content)
}

func TestSetVerbosityRewritesSystemMessage(t *testing.T) {
	s := NewStore("sonar")
	s.AppendUser("ciao")

	require.NoError(t, s.SetVerbosity(model.VerbosityVerbose))

	snap := s.Snapshot()
	verboseText, _ := ProfileText(model.VerbosityVerbose)
	assert.Equal(t, verboseText, snap.Messages[0].Content)
	assert.Equal(t, model.RoleSystem, snap.Messages[0].Role)
	// The user turn is untouched.
	assert.Equal(t, "ciao", snap.Messages[1].Content)
}

func TestSetVerbosityUnknownTag(t *testing.T) {
	s := NewStore("sonar")
	before := s.Snapshot()

	err := s.SetVerbosity(model.Verbosity("chatty"))
	require.ErrorIs(t, err, ErrInvalidVerbosity)
	assert.Equal(t, before, s.Snapshot())
}

func TestClearKeepsSystemMessageAndMode(t *testing.T) {
	s := NewStore("sonar")
	require.NoError(t, s.SetVerbosity(model.VerbosityVerbose))
	s.AppendUser("domanda")
	s.AppendAssistant("risposta")
	s.SetModel("sonar-pro")

	s.Clear()

	snap := s.Snapshot()
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, model.RoleSystem, snap.Messages[0].Role)
	assert.Equal(t, model.VerbosityVerbose, snap.Verbosity)
	assert.Equal(t, "sonar-pro", snap.Model)

	// Mode and model churn after a clear never grows the log.
	require.NoError(t, s.SetVerbosity(model.VerbosityCompact))
	s.SetModel("sonar")
	assert.Len(t, s.Snapshot().Messages, 1)
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := NewStore("sonar")
	snap := s.Snapshot()
	s.AppendUser("dopo lo snapshot")

	assert.Len(t, snap.Messages, 1)
	snap.Messages[0].Content = "mutato"
	assert.NotEqual(t, "mutato", s.Snapshot().Messages[0].Content)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	history := newFakeHistory()
	s := NewStore("sonar")
	s.AppendUser("domanda")
	s.AppendAssistant("risposta")

	require.NoError(t, s.Save(context.Background(), history, "default"))

	fresh := NewStore("sonar")
	require.NoError(t, fresh.Load(context.Background(), history, "default"))
	assert.Equal(t, s.Snapshot().Messages, fresh.Snapshot().Messages)
}

func TestLoadMissingHistoryLeavesSessionUntouched(t *testing.T) {
	history := newFakeHistory()
	s := NewStore("sonar")
	s.AppendUser("in corso")
	before := s.Snapshot()

	err := s.Load(context.Background(), history, "default")
	require.ErrorIs(t, err, ErrHistoryNotFound)
	assert.Equal(t, before, s.Snapshot())
}

func TestLoadRepairsMalformedHistory(t *testing.T) {
	history := newFakeHistory()
	history.saved["default"] = []model.Message{
		{Role: model.RoleUser, Content: "domanda"},
		{Role: model.RoleAssistant, Content: "risposta"},
	}

	s := NewStore("sonar")
	require.NoError(t, s.SetVerbosity(model.VerbosityVerbose))
	require.NoError(t, s.Load(context.Background(), history, "default"))

	snap := s.Snapshot()
	require.Len(t, snap.Messages, 3)
	assert.Equal(t, model.RoleSystem, snap.Messages[0].Role)
	verboseText, _ := ProfileText(model.VerbosityVerbose)
	assert.Equal(t, verboseText, snap.Messages[0].Content)
}

func TestLoadRepairsEmptyHistory(t *testing.T) {
	history := newFakeHistory()
	history.saved["default"] = []model.Message{}

	s := NewStore("sonar")
	require.NoError(t, s.Load(context.Background(), history, "default"))

	snap := s.Snapshot()
	require.Len(t, snap.Messages, 1)
	assert.Equal(t, model.RoleSystem, snap.Messages[0].Role)
}

func TestLoadSurfacesStorageFailure(t *testing.T) {
	history := newFakeHistory()
	history.loadErr = errors.New("disk on fire")

	s := NewStore("sonar")
	before := s.Snapshot()
	err := s.Load(context.Background(), history, "default")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrHistoryNotFound)
	assert.Equal(t, before, s.Snapshot())
}
