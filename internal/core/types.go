package core

const (
	FinchName          = "FinchBot"
	FinchUserAgent     = "FinchBot-Router/0.1"
	FinchRepositoryURL = "https://github.com/sandevgo/finchbot"
	FinchVersion       = "0.1.0"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message of the conversation, tagged with its author role.
// History is supplied by the caller with every request and is never
// mutated or persisted by the router.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolEvent is the audit record of one capability invocation. It is
// emitted for observability only and never feeds back into routing.
type ToolEvent struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	OK     bool   `json:"ok"`
	Output string `json:"output"`
}

// Reply is the unit returned for one turn. Text is always non-empty;
// Events stays empty unless a deterministic capability fired.
type Reply struct {
	Text   string      `json:"text"`
	Events []ToolEvent `json:"tool_events"`
}

// Result is what a capability hands back to the router: the user-facing
// content plus the event describing what actually happened. OK and the
// event's OK flag must agree.
type Result struct {
	OK      bool
	Content string
	Event   ToolEvent
}
