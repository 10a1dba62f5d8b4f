package main

import (
	"flag"
	"fmt"
	"konane/config"
	"konane/engine"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML match file")
	player1 := flag.String("p1", "", "Player1 agent, e.g. idab:eval=dsafemoves,duration=2s")
	player2 := flag.String("p2", "", "Player2 agent, e.g. random")
	seed := flag.Uint64("seed", 0, "Match seed, 0 draws one")
	render := flag.Bool("render", false, "Print the board before every move")
	history := flag.String("history", "", "Write the move history as CSV to this file")
	verbose := flag.Bool("v", false, "Log search details")
	flag.Parse()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	match, err := loadMatch(*configPath, *player1, *player2)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if *seed != 0 {
		match.Seed = *seed
	}
	if *render {
		match.Render = true
	}

	agents, err := match.Build(config.Env{In: os.Stdin, Out: os.Stdout, Logger: log.Logger})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create agents")
	}
	log.Info().Uint64("seed", match.Seed).Str("p1", match.Players[0].Kind).Str("p2", match.Players[1].Kind).Msg("starting match")

	options := []engine.Option{}
	if match.Render {
		options = append(options, engine.WithRender(os.Stdout))
	}
	e := engine.NewLocal(agents[0], agents[1], options...)
	winner, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}

	if *history != "" {
		if err := engine.SaveHistory(*history, e.History()); err != nil {
			log.Error().Err(err).Msg("failed to save history")
		}
	}
	fmt.Printf("Winner: %s after %d moves\n", winner, len(e.History()))
}

// loadMatch starts from the match file or the defaults and lets -p1 and -p2
// replace either side.
func loadMatch(path, player1, player2 string) (*config.MatchConfig, error) {
	match := config.Default()
	if path != "" {
		var err error
		if match, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	for i, arg := range []string{player1, player2} {
		if arg == "" {
			continue
		}
		a, err := config.ParseAgent(arg)
		if err != nil {
			return nil, err
		}
		match.Players[i] = a
	}
	return match, nil
}
