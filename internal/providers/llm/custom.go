package llm

import "time"

// CustomOpenAI talks to any self-hosted OpenAI-compatible endpoint.
type CustomOpenAI struct {
	*OpenAICompatible
}

func NewCustomOpenAI(baseURL, apiKey, model string, timeout time.Duration, window int) *CustomOpenAI {
	return &CustomOpenAI{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:       baseURL,
			APIKey:        apiKey,
			Model:         model,
			AuthHeader:    "Authorization",
			AuthPrefix:    "Bearer ",
			Timeout:       timeout,
			HistoryWindow: window,
		}),
	}
}
