// Package router classifies one user utterance into exactly one handling
// path and produces a Reply with an audit trail of the capabilities that
// fired. Routing is stateless per turn; the only state shared across
// turns is the session fact store.
package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/finchbot/internal/core"
	"github.com/sandevgo/finchbot/internal/providers/tools"
	"github.com/sandevgo/finchbot/internal/service/followup"
	"github.com/sandevgo/finchbot/pkg/log"
)

const (
	greetingFallbackText = "Hello! I remember this session. Ask me anything, or say \"help\" to see capabilities."
	rememberAckText      = "Got it — I saved that."
	calcFailureText      = "That expression didn't work for me."
	timeTemplate         = "The time is %s."

	fallbackText = "I keep our chat in memory for this session. " +
		"I can do quick math (e.g., `12*(3+4)`), tell the time, remember simple facts " +
		"(e.g., `remember project = Apollo` then `recall project`), and handle follow-ups " +
		"like \"explain this in brief?\". For richer chat, configure an LLM provider in .env."
)

const defaultDelegateTimeout = 20 * time.Second

type rule struct {
	name   string
	match  func(text string) ([]string, bool)
	handle func(ctx context.Context, m []string, utterance string, history []core.Turn) core.Reply
}

// Router owns one fact store, one clock and an optional generative
// delegate. A nil delegate is legal and simply means every delegate
// branch takes its local fallback.
type Router struct {
	facts    *tools.FactStore
	clock    core.Clock
	delegate core.Delegate
	timeout  time.Duration
	rules    []rule
}

// New validates the construction-time collaborators. These are the only
// failures allowed to be fatal; per-request conditions never are.
func New(facts *tools.FactStore, clock core.Clock, delegate core.Delegate, timeout time.Duration) (*Router, error) {
	if facts == nil {
		return nil, errors.New("router: fact store is required")
	}
	if clock == nil {
		return nil, errors.New("router: clock is required")
	}
	if timeout <= 0 {
		timeout = defaultDelegateTimeout
	}

	r := &Router{
		facts:    facts,
		clock:    clock,
		delegate: delegate,
		timeout:  timeout,
	}
	r.rules = []rule{
		{name: "greeting", match: matchGreeting, handle: r.handleGreeting},
		{name: "remember", match: matchRemember, handle: r.handleRemember},
		{name: "recall", match: matchRecall, handle: r.handleRecall},
		{name: "time", match: matchTime, handle: r.handleTime},
		{name: "calculate", match: matchCalculate, handle: r.handleCalculate},
		{name: "followup", match: matchFollowup, handle: r.handleFollowup},
	}
	return r, nil
}

// Route classifies the utterance against the ordered rule table and
// dispatches to the first match; the generative fallback is the
// unconditional last rule. Identical inputs always take the same path.
func (r *Router) Route(ctx context.Context, utterance string, history []core.Turn) core.Reply {
	for _, rule := range r.rules {
		if m, ok := rule.match(utterance); ok {
			log.FromCtx(ctx).Debug().Str("rule", rule.name).Msg("utterance classified")
			return rule.handle(ctx, m, utterance, history)
		}
	}
	log.FromCtx(ctx).Debug().Str("rule", "fallback").Msg("utterance classified")
	return r.handleFallback(ctx, utterance, history)
}

func (r *Router) handleGreeting(ctx context.Context, _ []string, utterance string, history []core.Turn) core.Reply {
	if text := r.tryDelegate(ctx, utterance, history); text != "" {
		return core.Reply{Text: text}
	}
	return core.Reply{Text: greetingFallbackText}
}

func (r *Router) handleRemember(ctx context.Context, m []string, _ string, _ []core.Turn) core.Reply {
	result := r.facts.Remember(m[0], m[1])
	return core.Reply{Text: rememberAckText, Events: []core.ToolEvent{result.Event}}
}

func (r *Router) handleRecall(ctx context.Context, m []string, _ string, _ []core.Turn) core.Reply {
	result := r.facts.Recall(m[0])
	return core.Reply{Text: result.Content, Events: []core.ToolEvent{result.Event}}
}

func (r *Router) handleTime(ctx context.Context, _ []string, _ string, _ []core.Turn) core.Reply {
	result := tools.ReadClock(r.clock)
	return core.Reply{
		Text:   fmt.Sprintf(timeTemplate, result.Content),
		Events: []core.ToolEvent{result.Event},
	}
}

func (r *Router) handleCalculate(ctx context.Context, m []string, _ string, _ []core.Turn) core.Reply {
	result := tools.Calculate(m[0])
	text := result.Content
	if !result.OK {
		text = calcFailureText
	}
	return core.Reply{Text: text, Events: []core.ToolEvent{result.Event}}
}

func (r *Router) handleFollowup(ctx context.Context, _ []string, utterance string, history []core.Turn) core.Reply {
	prompt := fmt.Sprintf("%s\n\nContext:\nPrevious answer: %s",
		utterance, followup.LastAssistantText(history))
	if text := r.tryDelegate(ctx, prompt, history); text != "" {
		return core.Reply{Text: text}
	}
	return core.Reply{Text: followup.Resolve(history)}
}

func (r *Router) handleFallback(ctx context.Context, utterance string, history []core.Turn) core.Reply {
	if text := r.tryDelegate(ctx, utterance, history); text != "" {
		return core.Reply{Text: text}
	}
	return core.Reply{Text: fallbackText}
}

// tryDelegate makes at most one bounded attempt against the delegate.
// Any failure, timeout or blank completion reads as "unavailable" and
// returns "", which sends the caller down its deterministic fallback.
func (r *Router) tryDelegate(ctx context.Context, prompt string, history []core.Turn) string {
	if r.delegate == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	text, err := r.delegate.Complete(ctx, prompt, history)
	if err != nil {
		log.FromCtx(ctx).Debug().Err(err).Msg("delegate unavailable, using local fallback")
		return ""
	}
	return strings.TrimSpace(text)
}
