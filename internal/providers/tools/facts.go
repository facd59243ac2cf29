package tools

import (
	"strings"
	"sync"

	"github.com/sandevgo/finchbot/internal/core"
)

const (
	factsRememberTool = "facts.remember"
	factsRecallTool   = "facts.recall"
)

// FactStore is the session-scoped key-value memory. Keys are trimmed and
// lowercased before every store and lookup, values are trimmed, and the
// latest write wins. Nothing survives the process.
type FactStore struct {
	mu    sync.RWMutex
	facts map[string]string
}

func NewFactStore() *FactStore {
	return &FactStore{
		facts: make(map[string]string),
	}
}

func (s *FactStore) Remember(key, value string) core.Result {
	k := normalizeKey(key)
	v := strings.TrimSpace(value)

	s.mu.Lock()
	s.facts[k] = v
	s.mu.Unlock()

	return core.Result{
		OK:      true,
		Content: "Noted.",
		Event: core.ToolEvent{
			Name:   factsRememberTool,
			Input:  k + "=" + v,
			OK:     true,
			Output: "Saved.",
		},
	}
}

// Recall looks a fact up. A missing key is a normal negative outcome,
// reported through the event, not an error.
func (s *FactStore) Recall(key string) core.Result {
	k := normalizeKey(key)

	s.mu.RLock()
	v, found := s.facts[k]
	s.mu.RUnlock()

	if !found {
		return core.Result{
			OK:      false,
			Content: "I don't have that saved yet.",
			Event: core.ToolEvent{
				Name:   factsRecallTool,
				Input:  k,
				OK:     false,
				Output: "Not found.",
			},
		}
	}

	return core.Result{
		OK:      true,
		Content: v,
		Event: core.ToolEvent{
			Name:   factsRecallTool,
			Input:  k,
			OK:     true,
			Output: v,
		},
	}
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
