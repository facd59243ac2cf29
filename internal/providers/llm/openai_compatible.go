package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sandevgo/finchbot/internal/core"
)

// systemPrompt frames every delegate call. The router supplies any
// turn-specific context inside the prompt itself.
const systemPrompt = "You are a warm, concise assistant. " +
	"Use the chat history for context. Be brief (1-3 sentences)."

const defaultHistoryWindow = 6

// OpenAICompatible speaks the /v1/chat/completions dialect shared by
// OpenAI, OpenRouter, Ollama and most self-hosted gateways. Every
// failure mode (transport, status, decoding, empty content) collapses
// to core.ErrUnavailable so the router can take its local fallback.
type OpenAICompatible struct {
	baseProvider
	authHeader    string
	authPrefix    string
	extraHeaders  map[string]string
	historyWindow int
}

type OpenAICompatibleConfig struct {
	BaseURL       string
	APIKey        string
	Model         string
	AuthHeader    string // e.g., "Authorization"
	AuthPrefix    string // e.g., "Bearer "
	ExtraHeaders  map[string]string
	Timeout       time.Duration
	HistoryWindow int
}

func NewOpenAICompatible(cfg OpenAICompatibleConfig) *OpenAICompatible {
	window := cfg.HistoryWindow
	if window <= 0 {
		window = defaultHistoryWindow
	}
	return &OpenAICompatible{
		baseProvider:  newBaseProvider(cfg.BaseURL, cfg.APIKey, cfg.Model, cfg.Timeout),
		authHeader:    cfg.AuthHeader,
		authPrefix:    cfg.AuthPrefix,
		extraHeaders:  cfg.ExtraHeaders,
		historyWindow: window,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (o *OpenAICompatible) Complete(ctx context.Context, prompt string, history []core.Turn) (string, error) {
	payload := map[string]any{
		"model":       o.model,
		"messages":    o.buildMessages(prompt, history),
		"temperature": 0.6,
		"max_tokens":  160,
	}

	headers := make(map[string]string)
	if o.authHeader != "" && o.apiKey != "" {
		headers[o.authHeader] = o.authPrefix + o.apiKey
	}
	for k, v := range o.extraHeaders {
		headers[k] = v
	}

	resp, err := o.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload, headers)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	return parseCompletion(resp)
}

// buildMessages assembles the wire payload: system prompt, the last few
// user/assistant turns in original order, then the prompt itself.
func (o *OpenAICompatible) buildMessages(prompt string, history []core.Turn) []chatMessage {
	messages := []chatMessage{{Role: core.RoleSystem, Content: systemPrompt}}

	compact := make([]chatMessage, 0, len(history))
	for _, turn := range history {
		if turn.Content == "" {
			continue
		}
		if turn.Role != core.RoleUser && turn.Role != core.RoleAssistant {
			continue
		}
		compact = append(compact, chatMessage{Role: turn.Role, Content: turn.Content})
	}
	if len(compact) > o.historyWindow {
		compact = compact[len(compact)-o.historyWindow:]
	}

	messages = append(messages, compact...)
	return append(messages, chatMessage{Role: core.RoleUser, Content: prompt})
}

func parseCompletion(resp *http.Response) (string, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body: %v", core.ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: http %d: %s", core.ErrUnavailable, resp.StatusCode, string(data))
	}

	var result struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("%w: decode: %v", core.ErrUnavailable, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", core.ErrUnavailable)
	}

	content := strings.TrimSpace(result.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: blank completion", core.ErrUnavailable)
	}
	return content, nil
}
