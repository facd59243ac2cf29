package telegram

import (
	"sync"

	"github.com/sandevgo/finchbot/internal/core"
)

// maxTurns bounds the per-chat window handed to the router. Telegram
// chats outlive single requests but nothing here is persisted.
const maxTurns = 24

type sessions struct {
	mu    sync.Mutex
	chats map[int64][]core.Turn
}

func newSessions() *sessions {
	return &sessions{
		chats: make(map[int64][]core.Turn),
	}
}

// get returns a copy so handlers never observe a window mutated by a
// concurrent message in the same chat.
func (s *sessions) get(chatID int64) []core.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.chats[chatID]
	out := make([]core.Turn, len(history))
	copy(out, history)
	return out
}

func (s *sessions) remember(chatID int64, userText, assistantText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.chats[chatID],
		core.Turn{Role: core.RoleUser, Content: userText},
		core.Turn{Role: core.RoleAssistant, Content: assistantText},
	)
	if len(history) > maxTurns {
		history = history[len(history)-maxTurns:]
	}
	s.chats[chatID] = history
}
