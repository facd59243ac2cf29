package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/sandevgo/finchbot/internal/config"
	"github.com/sandevgo/finchbot/internal/providers/llm"
	"github.com/sandevgo/finchbot/internal/providers/tools"
	"github.com/sandevgo/finchbot/internal/service/router"
	"github.com/sandevgo/finchbot/internal/transport/cli"
	"github.com/sandevgo/finchbot/internal/transport/httpapi"
	"github.com/sandevgo/finchbot/internal/transport/telegram"
	"github.com/sandevgo/finchbot/pkg/log"
	"github.com/sandevgo/finchbot/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)

	// 2. Generative delegate (optional)
	delegate, err := llm.NewDelegate(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM delegate")
	}
	if closer, ok := delegate.(interface{ Close() error }); ok {
		services = append(services, srv.NewCleanup(closer.Close))
	}

	// 3. Router with its session-scoped capabilities. One instance, one
	// fact store, shared by every enabled transport.
	rt, err := router.New(tools.NewFactStore(), tools.SystemClock{}, delegate, appCfg.DelegateTimeout)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to construct router")
	}

	// 4. Transports
	if appCfg.EnableHTTP {
		services = append(services, httpapi.NewServer(config.NewHTTPConfig(ctx), rt))
	}

	if appCfg.EnableCLI {
		repl, err := cli.NewReadLine(rt, appCfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize CLI transport")
		}
		services = append(services, repl)
	}

	if appCfg.IsTelegramSelected() {
		bot, err := telegram.NewBot(ctx, config.NewTelegramConfig(ctx), rt)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize telegram transport")
		}
		services = append(services, bot)
	}

	if len(services) == 0 {
		logger.Fatal().Msg("no transport enabled, nothing to start")
	}

	return services
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
