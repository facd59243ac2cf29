package llm

import "time"

// OpenAI provider is implemented using OpenAICompatible.
type OpenAI struct {
	*OpenAICompatible
}

func NewOpenAI(apiKey, model string, timeout time.Duration, window int) *OpenAI {
	return &OpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:       "https://api.openai.com",
			APIKey:        apiKey,
			Model:         model,
			AuthHeader:    "Authorization",
			AuthPrefix:    "Bearer ",
			Timeout:       timeout,
			HistoryWindow: window,
		}),
	}
}
