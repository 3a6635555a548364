// Package player resolves live command invocations against recorded
// scenarios and substitutes the recorded result for real process execution.
package player

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/cmdmock/internal/logging"
	"github.com/opencode-ai/cmdmock/internal/match"
	"github.com/opencode-ai/cmdmock/internal/models"
	"github.com/opencode-ai/cmdmock/internal/store"
)

// Player errors. ErrWrongFamily and ErrTemplateMismatch are deliberately
// distinct so a test can tell "wrong tool invoked" apart from "right tool,
// wrong arguments".
var (
	ErrScenarioNotFound = errors.New("scenario not found")
	ErrWrongFamily      = errors.New("invocation is for a different command family")
	ErrTemplateMismatch = errors.New("invocation does not match recorded template")
)

// DefaultDynamicFlags are the noise flags stripped from live invocations
// before matching when a player is not configured otherwise. Their values
// are non-deterministic (timestamps) and irrelevant to scenario selection.
var DefaultDynamicFlags = []string{"--since"}

// MockFunc is a substitute for process execution. Given a live argument
// list, it returns the recorded result, or an error when the invocation
// breaks the recorded contract.
type MockFunc func(argv []string) (*models.Result, error)

// Player resolves live invocations for one command family. It is read-only
// after construction; each GetSubprocessMock call loads its document fresh.
type Player struct {
	family       string
	root         string
	dynamicFlags []string
	store        *store.Store
	logger       zerolog.Logger
}

// Option configures a Player.
type Option func(*Player)

// WithDynamicFlags replaces the default noise-flag set stripped from live
// invocations before matching.
func WithDynamicFlags(flags ...string) Option {
	return func(p *Player) {
		p.dynamicFlags = flags
	}
}

// New creates a player for the given command family rooted at the fixtures
// directory.
func New(family, root string, opts ...Option) *Player {
	p := &Player{
		family:       family,
		root:         root,
		dynamicFlags: DefaultDynamicFlags,
		store:        store.New(family, root),
		logger:       logging.Component("player"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CommandMatches reports whether the live token list matches the stored
// template, using this player's dynamic-flag set.
func (p *Player) CommandMatches(live, template []string) bool {
	return match.ParseTemplate(template).Matches(live, p.dynamicFlags)
}

// GetSubprocessMock loads the named scenario from the family-relative
// document path and returns a callable substitute for process execution.
//
// A missing scenario name is a configuration error and fails here, at setup
// time. The returned callable fails loudly when the live invocation names a
// different command family (ErrWrongFamily) or does not match the recorded
// template (ErrTemplateMismatch); a recorded non-zero exit code is returned
// as data, not as an error.
func (p *Player) GetSubprocessMock(documentRel, scenarioName string) (MockFunc, error) {
	scenarios, err := p.store.LoadDocument(documentRel)
	if err != nil {
		return nil, err
	}

	scenario, ok := scenarios[scenarioName]
	if !ok {
		return nil, fmt.Errorf("%w: %q in document %s", ErrScenarioNotFound, scenarioName, documentRel)
	}

	template := match.ParseTemplate(scenario.Template)
	dynamicFlags := p.dynamicFlags
	logger := p.logger.With().
		Str("family", p.family).
		Str("scenario", scenarioName).
		Logger()

	return func(argv []string) (*models.Result, error) {
		if len(argv) == 0 || argv[0] != p.family {
			got := ""
			if len(argv) > 0 {
				got = argv[0]
			}
			return nil, fmt.Errorf("%w: expected %q, got %q", ErrWrongFamily, p.family, got)
		}

		bindings, ok := template.Match(argv, dynamicFlags)
		if !ok {
			return nil, fmt.Errorf("%w: live %v, template %v", ErrTemplateMismatch, argv, scenario.Template)
		}

		logger.Debug().
			Strs("argv", argv).
			Interface("bindings", bindings).
			Msg("invocation resolved to recorded scenario")

		return &models.Result{
			Stdout:   scenario.Stdout,
			Stderr:   scenario.Stderr,
			ExitCode: scenario.ExitCode,
		}, nil
	}, nil
}
