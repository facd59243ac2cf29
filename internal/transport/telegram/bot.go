package telegram

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/sandevgo/finchbot/internal/config"
	"github.com/sandevgo/finchbot/internal/service/router"
	"github.com/sandevgo/finchbot/pkg/log"
)

const baseContextKey = "base_context"

type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	router   *router.Router
	sessions *sessions
	sender   *sender
	ownerID  int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	rt *router.Router,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		router:   rt,
		sessions: newSessions(),
		sender:   newSender(b),
		ownerID:  cfg.OwnerID,
	}

	// Carry the signal context with the logger into handlers
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	// Middleware: only the owner talks to this bot
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender().ID != bot.ownerID {
				return nil
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	logger := log.FromCtx(ctx)
	chatID := c.Chat().ID

	_ = c.Notify(tele.Typing)

	history := b.sessions.get(chatID)
	reply := b.router.Route(ctx, c.Text(), history)

	for _, event := range reply.Events {
		logger.Debug().
			Int64("chat", chatID).
			Str("tool", event.Name).
			Bool("ok", event.OK).
			Msg("tool fired")
	}

	if err := b.sender.sendMarkdown(ctx, c.Chat(), reply.Text); err != nil {
		logger.Error().Err(err).Int64("chat", chatID).Msg("failed to send telegram reply")
		return c.Send(reply.Text) // last resort: plain text
	}

	b.sessions.remember(chatID, c.Text(), reply.Text)
	return nil
}
