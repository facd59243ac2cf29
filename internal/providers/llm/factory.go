package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/finchbot/internal/config"
	"github.com/sandevgo/finchbot/internal/core"
	"github.com/sandevgo/finchbot/pkg/log"
)

// NewDelegate creates the configured generative delegate. A nil delegate
// (provider "none") is valid: the router then always answers locally.
func NewDelegate(ctx context.Context, cfg *config.AppConfig) (core.Delegate, error) {
	if !cfg.IsDelegateSelected() {
		log.FromCtx(ctx).Info().Msg("no delegate configured, running fully local")
		return nil, nil
	}

	log.FromCtx(ctx).Info().
		Str("provider", cfg.LLMProvider).
		Dur("timeout", cfg.DelegateTimeout).
		Msg("starting llm delegate")

	switch cfg.LLMProvider {
	case "openai":
		c := config.NewOpenAIConfig(ctx)
		return NewOpenAI(c.APIKey, c.Model, cfg.DelegateTimeout, cfg.HistoryWindow), nil
	case "openrouter":
		c := config.NewOpenRouterConfig(ctx)
		return NewOpenRouter(c.APIKey, c.Model, cfg.DelegateTimeout, cfg.HistoryWindow), nil
	case "ollama":
		c := config.NewOllamaConfig(ctx)
		return NewOllama(c.BaseURL, c.APIKey, c.Model, cfg.DelegateTimeout, cfg.HistoryWindow), nil
	case "custom":
		c := config.NewCustomOpenAIConfig(ctx)
		return NewCustomOpenAI(c.BaseURL, c.APIKey, c.Model, cfg.DelegateTimeout, cfg.HistoryWindow), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
