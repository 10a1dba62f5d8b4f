// Package config describes a match: which agent plays each side and how it is
// configured. Matches come from a YAML file or from compact agent strings such
// as "idab:eval=dsafemoves,duration=2s".
package config

import (
	"konane/game"
	"konane/meta"
	"math"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"lukechampine.com/frand"
)

// Agent kinds.
const (
	KindMinimax             = "minimax" // fixed depth, no pruning
	KindAlphaBeta           = "ab"      // fixed depth
	KindRandomizedAlphaBeta = "rab"     // fixed depth, shuffled root
	KindDeepening           = "idab"    // iterative deepening under a time budget
	KindRandomizedDeepening = "rabid"   // iterative deepening, shuffled root
	KindRandom              = "random"
	KindHuman               = "human"
)

var kinds = []string{
	KindMinimax,
	KindAlphaBeta,
	KindRandomizedAlphaBeta,
	KindDeepening,
	KindRandomizedDeepening,
	KindRandom,
	KindHuman,
}

type AgentConfig struct {
	Kind string `yaml:"kind"`
	// Strategy names the evaluation heuristic of search agents.
	Strategy string `yaml:"strategy,omitempty"`
	// Asymmetric replaces Strategy with one heuristic used when Player1 is
	// evaluating and another when Player2 is.
	Asymmetric []string      `yaml:"asymmetric,omitempty"`
	Depth      int           `yaml:"depth,omitempty"`
	Duration   time.Duration `yaml:"duration,omitempty"`
}

type MatchConfig struct {
	// Seed drives every random choice of the match. Zero draws a fresh seed.
	Seed    uint64        `yaml:"seed"`
	Render  bool          `yaml:"render"`
	Players []AgentConfig `yaml:"players"`
}

// Default pits an iterative deepening agent against a random one.
func Default() *MatchConfig {
	c := &MatchConfig{
		Players: []AgentConfig{
			{Kind: KindDeepening},
			{Kind: KindRandom},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads, completes and validates a match file.
func Load(path string) (*MatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read match config")
	}
	var c MatchConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.Wrapf(err, "failed to parse match config %s", path)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, errors.WithMessagef(err, "invalid match config %s", path)
	}
	return &c, nil
}

func (c *MatchConfig) applyDefaults() {
	for i := range c.Players {
		c.Players[i].applyDefaults()
	}
}

func (c *MatchConfig) Validate() error {
	var errs error
	if len(c.Players) != 2 {
		errs = multierror.Append(errs, errors.Errorf("expected 2 players, got %d", len(c.Players)))
	}
	for i := range c.Players {
		if err := c.Players[i].Validate(); err != nil {
			errs = multierror.Append(errs, errors.WithMessagef(err, "player %d", i+1))
		}
	}
	return errs
}

// ResolveSeed draws a non-zero seed if none is set and returns it.
func (c *MatchConfig) ResolveSeed() uint64 {
	if c.Seed == 0 {
		c.Seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return c.Seed
}

func (a *AgentConfig) applyDefaults() {
	if !a.searches() {
		return
	}
	if a.Strategy == "" && len(a.Asymmetric) == 0 {
		a.Strategy = meta.DEFAULT_STRATEGY
	}
	if a.deepens() {
		if a.Duration == 0 {
			a.Duration = meta.DEFAULT_DURATION
		}
	} else if a.Depth == 0 {
		a.Depth = meta.DEFAULT_DEPTH
	}
}

// Validate reports every problem with the agent at once.
func (a *AgentConfig) Validate() error {
	var errs error
	known := false
	for _, kind := range kinds {
		known = known || a.Kind == kind
	}
	if !known {
		errs = multierror.Append(errs, errors.Errorf("unknown agent kind %q", a.Kind))
	}
	if a.Depth < 0 {
		errs = multierror.Append(errs, errors.Errorf("depth must not be negative, got %d", a.Depth))
	}
	if a.Duration < 0 {
		errs = multierror.Append(errs, errors.Errorf("duration must not be negative, got %s", a.Duration))
	}
	if !known || !a.searches() {
		return errs
	}

	if !a.deepens() && a.Duration != 0 {
		errs = multierror.Append(errs, errors.Errorf("%s searches to a fixed depth and takes no duration", a.Kind))
	}
	if !a.deepens() && a.Depth == 0 {
		errs = multierror.Append(errs, errors.Errorf("%s needs a depth", a.Kind))
	}
	if a.deepens() && a.Duration == 0 {
		errs = multierror.Append(errs, errors.Errorf("%s needs a duration", a.Kind))
	}
	if a.deepens() && a.Depth > 0 && a.Depth < meta.FIRST_DEPTH {
		errs = multierror.Append(errs, errors.Errorf("%s deepens from depth %d, a depth cap of %d would never search", a.Kind, meta.FIRST_DEPTH, a.Depth))
	}
	switch {
	case a.Strategy != "" && len(a.Asymmetric) != 0:
		errs = multierror.Append(errs, errors.New("strategy and asymmetric are mutually exclusive"))
	case len(a.Asymmetric) != 0 && len(a.Asymmetric) != 2:
		errs = multierror.Append(errs, errors.Errorf("asymmetric takes 2 strategies, got %d", len(a.Asymmetric)))
	}
	if a.Strategy != "" {
		if _, err := game.ParseStrategy(a.Strategy); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	for _, name := range a.Asymmetric {
		if _, err := game.ParseStrategy(name); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

// Evaluate returns the agent's evaluation function. The config must be valid.
func (a *AgentConfig) Evaluate() game.Evaluate {
	if len(a.Asymmetric) == 2 {
		return game.Asymmetric(game.Strategy(a.Asymmetric[0]).Evaluate(), game.Strategy(a.Asymmetric[1]).Evaluate())
	}
	return game.Strategy(a.Strategy).Evaluate()
}

func (a *AgentConfig) searches() bool {
	return a.Kind != KindRandom && a.Kind != KindHuman
}

func (a *AgentConfig) deepens() bool {
	return a.Kind == KindDeepening || a.Kind == KindRandomizedDeepening
}
