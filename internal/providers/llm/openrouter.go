package llm

import (
	"time"

	"github.com/sandevgo/finchbot/internal/core"
)

type OpenRouter struct {
	*OpenAICompatible
}

func NewOpenRouter(apiKey, model string, timeout time.Duration, window int) *OpenRouter {
	return &OpenRouter{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    "https://openrouter.ai/api",
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
			ExtraHeaders: map[string]string{
				"HTTP-Referer": core.FinchRepositoryURL,
				"X-Title":      core.FinchName,
			},
			Timeout:       timeout,
			HistoryWindow: window,
		}),
	}
}
