package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/finchbot/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"FINCH_RUNTIME_PATH" envDefault:".finchbot"`

	// Delegate provider: openai, openrouter, ollama, custom or none
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"none"`

	// Transport flags
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableCLI      bool `env:"ENABLE_CLI" envDefault:"true"`
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`

	// How many recent turns the delegate sees per call
	HistoryWindow int `env:"HISTORY_WINDOW" envDefault:"6"`

	// Upper bound for one delegate attempt; failures fall back locally
	DelegateTimeout time.Duration `env:"DELEGATE_TIMEOUT" envDefault:"20s"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetInputHistoryPath() string {
	return filepath.Join(c.RuntimePath, "input_history")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsDelegateSelected() bool {
	return c.LLMProvider != "" && c.LLMProvider != "none"
}
