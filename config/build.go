package config

import (
	"io"
	"konane/agent"
	"konane/game"
	"konane/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Env carries what agents need beyond their configuration.
type Env struct {
	Seed   uint64
	In     io.Reader // human input
	Out    io.Writer // human prompts
	Logger zerolog.Logger
}

// Build creates the agent playing player. The config must be valid.
func (a *AgentConfig) Build(player game.Player, env Env) (agent.Agent, error) {
	switch a.Kind {
	case KindHuman:
		if env.In == nil || env.Out == nil {
			return nil, errors.New("human agent needs an input and an output")
		}
		return agent.NewHumanAgent(player, env.In, env.Out), nil
	case KindRandom:
		return agent.NewRandomAgent(env.Seed), nil
	}

	options := []searcher.Option{
		searcher.WithLogger(env.Logger.With().Stringer("player", player).Str("agent", a.Kind).Logger()),
		searcher.WithMetrics(),
	}
	if a.Depth > 0 {
		options = append(options, searcher.WithDepth(a.Depth))
	}
	if a.Duration > 0 {
		options = append(options, searcher.WithDuration(a.Duration))
	}
	switch a.Kind {
	case KindMinimax:
		options = append(options, searcher.WithPruning(false))
	case KindRandomizedAlphaBeta, KindRandomizedDeepening:
		options = append(options, searcher.WithShuffle(env.Seed))
	case KindAlphaBeta, KindDeepening:
	default:
		return nil, errors.Errorf("unknown agent kind %q", a.Kind)
	}
	return agent.NewSearchAgent(searcher.NewMinimax(player, a.Evaluate(), options...)), nil
}

// Build creates both agents. Each side gets its own seed derived from the
// match seed, which is drawn first if unset.
func (c *MatchConfig) Build(env Env) ([2]agent.Agent, error) {
	var agents [2]agent.Agent
	if err := c.Validate(); err != nil {
		return agents, err
	}
	seed := c.ResolveSeed()
	for i, player := range []game.Player{game.Player1, game.Player2} {
		playerEnv := env
		playerEnv.Seed = seed + uint64(i)
		a, err := c.Players[i].Build(player, playerEnv)
		if err != nil {
			return agents, errors.WithMessagef(err, "player %s", player)
		}
		agents[i] = a
	}
	return agents, nil
}
