package main

import (
	"context"
	"fanorona/engine"
	"fanorona/experiments"
	"fanorona/experiments/metrics"
	"fanorona/game"
	"fanorona/meta"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.String("experiment", "", "YAML experiment config; plays a single game when empty")
	green := flag.String("green", "alphabeta:informed:2", "Green agent: random or <minimax|alphabeta>:<heuristic>:<depth>")
	red := flag.String("red", "alphabeta:naive:2", "Red agent, same format as -green")
	maxTurns := flag.Int("max-turns", meta.MAX_TURNS, "turn limit of a single game")
	seed := flag.Uint64("seed", 1, "seed of random agents")
	level := flag.String("log-level", "info", "zerolog level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	if *experiment != "" {
		runExperiment(*experiment)
		return
	}

	greenConfig, err := parseAgent(*green)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -green")
	}
	redConfig, err := parseAgent(*red)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -red")
	}

	e := engine.NewLocalEngine(engine.NewAgent(greenConfig, *seed), engine.NewAgent(redConfig, *seed+1))
	e.MaxTurns = *maxTurns
	winner, gameMetric, _ := e.Run()

	board := e.Session.Board()
	fmt.Println(board.String())
	fmt.Printf("winner: %s (%s) after %d moves, tokens G=%d R=%d\n",
		winner, gameMetric.Reason, gameMetric.TotalMoves, gameMetric.GreenTokens, gameMetric.RedTokens)
}

func runExperiment(path string) {
	config, err := experiments.LoadConfig(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load experiment")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := experiments.Run(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	wins, draws := report.Wins()
	for _, agent := range config.Agents {
		log.Info().Msgf("agent %d won %d games", agent.ID, wins[agent.ID])
	}
	log.Info().Msgf("%d draws, results in %s", draws, report.Dir)
}

// parseAgent reads "random" or "<minimax|alphabeta>:<heuristic>:<depth>".
func parseAgent(s string) (metrics.AgentConfig, error) {
	if s == "random" {
		return metrics.AgentConfig{Random: true}, nil
	}

	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return metrics.AgentConfig{}, fmt.Errorf("malformed agent %q", s)
	}

	config := metrics.AgentConfig{}
	switch parts[0] {
	case "minimax":
	case "alphabeta":
		config.AlphaBeta = true
	default:
		return metrics.AgentConfig{}, fmt.Errorf("unknown algorithm %q", parts[0])
	}

	heuristic, err := game.ParseHeuristic(parts[1])
	if err != nil {
		return metrics.AgentConfig{}, err
	}
	config.Heuristic = heuristic

	depth, err := strconv.Atoi(parts[2])
	if err != nil || depth < 0 {
		return metrics.AgentConfig{}, fmt.Errorf("%w: %q", game.ErrInvalidDepth, parts[2])
	}
	config.Depth = depth
	return config, nil
}
