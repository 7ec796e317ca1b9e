package usecase

import (
	"context"
	"testing"

	"github.com/fmorandi/chatai/config"
	"github.com/fmorandi/chatai/internal/model"
	"github.com/fmorandi/chatai/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTransport struct {
	reply    string
	err      error
	received []model.CompletionRequest
}

func (f *fakeTransport) Send(_ context.Context, req model.CompletionRequest) (string, error) {
	f.received = append(f.received, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

type fakeHistory struct {
	saved map[string][]model.Message
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{saved: make(map[string][]model.Message)}
}

func (f *fakeHistory) Save(_ context.Context, key string, messages []model.Message) error {
	f.saved[key] = messages
	return nil
}

func (f *fakeHistory) Load(_ context.Context, key string) ([]model.Message, error) {
	messages, ok := f.saved[key]
	if !ok {
		return nil, session.ErrHistoryNotFound
	}
	return messages, nil
}

func newTestUsecase(transport *fakeTransport) *ChatUsecase {
	return NewChatUsecase(
		ChatUsecaseDeps{
			Transport: transport,
			History:   newFakeHistory(),
			Counter: func(messages []model.Message, _ string) (int, error) {
				return len(messages), nil
			},
		}, config.History{},
	)
}

func TestProcessTurnSuccess(t *testing.T) {
	transport := &fakeTransport{reply: "Ecco: ```print(1)``` la **risposta**"}
	uc := newTestUsecase(transport)
	store := session.NewStore("sonar")

	result, err := uc.ProcessTurn(context.Background(), store, "una domanda qualunque")
	require.NoError(t, err)
	assert.Equal(t, "Ecco: la risposta", result.Prose)
	assert.Equal(t, "print(1)", result.Code)

	snap := store.Snapshot()
	require.Len(t, snap.Messages, 3)
	assert.Equal(t, model.RoleUser, snap.Messages[1].Role)
	assert.Equal(t, "una domanda qualunque", snap.Messages[1].Content)
	assert.Equal(t, model.RoleAssistant, snap.Messages[2].Role)
	// Only the cleaned prose is stored, never the extracted code.
	assert.Equal(t, "Ecco: la risposta", snap.Messages[2].Content)
}

func TestProcessTurnSendsFullHistoryWithFixedTemperature(t *testing.T) {
	transport := &fakeTransport{reply: "ok"}
	uc := newTestUsecase(transport)
	store := session.NewStore("sonar")

	_, err := uc.ProcessTurn(context.Background(), store, "prima")
	require.NoError(t, err)
	_, err = uc.ProcessTurn(context.Background(), store, "seconda")
	require.NoError(t, err)

	require.Len(t, transport.received, 2)
	second := transport.received[1]
	assert.Equal(t, "sonar", second.Model)
	assert.Equal(t, Temperature, second.Temperature)
	// system + first user + first assistant + second user
	assert.Len(t, second.Messages, 4)
}

func TestProcessTurnTheorySwitchesToVerbose(t *testing.T) {
	transport := &fakeTransport{reply: "ok"}
	uc := newTestUsecase(transport)
	store := session.NewStore("sonar")
	require.Equal(t, model.VerbosityCompact, store.Verbosity())

	_, err := uc.ProcessTurn(context.Background(), store, "spiega la ricorsione")
	require.NoError(t, err)

	assert.Equal(t, model.VerbosityVerbose, store.Verbosity())
	// The switch happened before the request was built.
	verboseText, _ := session.ProfileText(model.VerbosityVerbose)
	assert.Equal(t, verboseText, transport.received[0].Messages[0].Content)
}

func TestProcessTurnMathOverridesManualVerbose(t *testing.T) {
	transport := &fakeTransport{reply: "ok"}
	uc := newTestUsecase(transport)
	store := session.NewStore("sonar")
	require.NoError(t, store.SetVerbosity(model.VerbosityVerbose))

	_, err := uc.ProcessTurn(context.Background(), store, "risolvi 2+2")
	require.NoError(t, err)

	assert.Equal(t, model.VerbosityCompact, store.Verbosity())
}

func TestProcessTurnGenericKeepsVerbosity(t *testing.T) {
	transport := &fakeTransport{reply: "ok"}
	uc := newTestUsecase(transport)
	store := session.NewStore("sonar")
	require.NoError(t, store.SetVerbosity(model.VerbosityVerbose))

	_, err := uc.ProcessTurn(context.Background(), store, "buongiorno")
	require.NoError(t, err)

	assert.Equal(t, model.VerbosityVerbose, store.Verbosity())
}

func TestProcessTurnTransportFailureKeepsUserTurn(t *testing.T) {
	transportErr := &TransportError{StatusCode: 503, Body: "service unavailable"}
	transport := &fakeTransport{err: transportErr}
	uc := newTestUsecase(transport)
	store := session.NewStore("sonar")

	_, err := uc.ProcessTurn(context.Background(), store, "spiega la gravità")
	require.Error(t, err)

	var te *TransportError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 503, te.StatusCode)

	// The user turn and the verbosity switch survive; no assistant turn.
	snap := store.Snapshot()
	require.Len(t, snap.Messages, 2)
	assert.Equal(t, model.RoleUser, snap.Messages[1].Role)
	assert.Equal(t, model.VerbosityVerbose, snap.Verbosity)
}

func TestSetVerbosityByTag(t *testing.T) {
	uc := newTestUsecase(&fakeTransport{})
	store := session.NewStore("sonar")

	require.NoError(t, uc.SetVerbosity(store, "verbose"))
	assert.Equal(t, model.VerbosityVerbose, store.Verbosity())

	err := uc.SetVerbosity(store, "loquace")
	assert.ErrorIs(t, err, session.ErrInvalidVerbosity)
}

func TestSaveAndLoadThroughHistory(t *testing.T) {
	uc := newTestUsecase(&fakeTransport{reply: "ok"})
	store := session.NewStore("sonar")
	_, err := uc.ProcessTurn(context.Background(), store, "ciao a tutti")
	require.NoError(t, err)

	require.NoError(t, uc.Save(context.Background(), store, session.DefaultKey))

	fresh := session.NewStore("sonar")
	require.NoError(t, uc.Load(context.Background(), fresh, session.DefaultKey))
	assert.Equal(t, store.Snapshot().Messages, fresh.Snapshot().Messages)
}

func TestLoadMissingHistoryIsFreshStart(t *testing.T) {
	uc := newTestUsecase(&fakeTransport{})
	store := session.NewStore("sonar")

	err := uc.Load(context.Background(), store, session.DefaultKey)
	assert.ErrorIs(t, err, session.ErrHistoryNotFound)
	assert.Len(t, store.Snapshot().Messages, 1)
}
