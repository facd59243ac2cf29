package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/sandevgo/finchbot/internal/config"
	"github.com/sandevgo/finchbot/internal/core"
	"github.com/sandevgo/finchbot/internal/service/router"
	"github.com/sandevgo/finchbot/pkg/log"
)

// maxTurns caps the session window the REPL replays to the router.
const maxTurns = 40

// ReadLine is the interactive terminal transport. The REPL owns the
// conversation history for its session; the router itself stays
// stateless across turns.
type ReadLine struct {
	cfg     *config.AppConfig
	router  *router.Router
	rl      *readline.Instance
	history []core.Turn
}

func NewReadLine(rt *router.Router, cfg *config.AppConfig) (*ReadLine, error) {
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     cfg.GetInputHistoryPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:    cfg,
		router: rt,
		rl:     rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("ReadLine chat started. Type 'exit' to quit.")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		reply := r.router.Route(ctx, line, r.history)

		for _, event := range reply.Events {
			logger.Debug().
				Str("tool", event.Name).
				Str("input", event.Input).
				Bool("ok", event.OK).
				Str("output", event.Output).
				Msg("tool fired")
		}
		fmt.Fprintf(r.rl.Stdout(), "%s\n", reply.Text)

		r.remember(line, reply.Text)
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

func (r *ReadLine) remember(userText, assistantText string) {
	r.history = append(r.history,
		core.Turn{Role: core.RoleUser, Content: userText},
		core.Turn{Role: core.RoleAssistant, Content: assistantText},
	)
	if len(r.history) > maxTurns {
		r.history = r.history[len(r.history)-maxTurns:]
	}
}
