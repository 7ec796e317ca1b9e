package model

type Role string

const (
	RoleSystem    = Role("system")
	RoleUser      = Role("user")
	RoleAssistant = Role("assistant")
)

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Session is an immutable snapshot of one conversation: the full ordered
// message log plus the active verbosity tag and model identifier.
type Session struct {
	Messages  []Message
	Verbosity Verbosity
	Model     string
}

// CompletionRequest is the outbound payload handed to the transport
// adapter. No max-tokens field is set on purpose: the remote service
// applies its own default maximum.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	Temperature float32
}

// CompletionResult is the sanitized outcome of one turn. Code is empty
// when the reply contained no fenced block.
type CompletionResult struct {
	Prose string
	Code  string
}
