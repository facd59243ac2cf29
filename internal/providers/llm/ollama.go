package llm

import "time"

type Ollama struct {
	*OpenAICompatible
}

func NewOllama(baseURL, apiKey, model string, timeout time.Duration, window int) *Ollama {
	return &Ollama{
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
