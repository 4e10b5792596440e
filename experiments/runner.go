package experiments

import (
	"context"
	"fanorona/engine"
	"fanorona/experiments/metrics"
	"fanorona/game"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type gameResult struct {
	record metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Report is what Run leaves behind: the result directory and the played games.
type Report struct {
	Dir   string
	Games []metrics.GameRecord
}

// Run plays every matchup of config and writes agent configs, game records and
// move records as CSV. Seats swap every other game so both agents of a
// matchup play Green.
func Run(ctx context.Context, config Config) (Report, error) {
	total := len(config.MatchUps) * config.Games
	results := make([]gameResult, total)

	log.Info().Msgf("starting %s experiment with %d games...", config.Name, total)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(config.Parallelism)
	for mi, matchup := range config.MatchUps {
		for i := 0; i < config.Games; i++ {
			id := mi*config.Games + i + 1
			green, red := config.agent(matchup[0]), config.agent(matchup[1])
			if i%2 == 1 {
				green, red = red, green
			}

			mi, i := mi, i
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Debug().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(config.MatchUps), i+1, config.Games)

				results[id-1] = runGame(config, id, green, red)

				log.Info().Msgf("completed game %d with winner: %q (%s)", id, results[id-1].record.Winner, results[id-1].record.Reason)
				return nil
			})
		}
	}
	err := g.Wait()
	if err != nil {
		return Report{}, fmt.Errorf("experiment %s interrupted: %w", config.Name, err)
	}

	log.Info().Msgf("completed %s experiment", config.Name)
	return store(config, results)
}

func runGame(config Config, id int, green, red metrics.AgentConfig) gameResult {
	seed := config.Seed + 2*uint64(id)
	e := engine.NewLocalEngine(engine.NewAgent(green, seed), engine.NewAgent(red, seed+1))
	e.MaxTurns = config.MaxTurns

	_, gameMetric, moveMetrics := e.Run()

	result := gameResult{
		record: metrics.GameRecord{
			ID:         id,
			Agent1:     green.ID,
			Agent2:     red.ID,
			GameMetric: gameMetric,
		},
		moves: make([]metrics.MoveRecord, 0, len(moveMetrics)),
	}
	for _, mm := range moveMetrics {
		result.moves = append(result.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return result
}

func store(config Config, results []gameResult) (Report, error) {
	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return Report{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(config.Agents)
	if err != nil {
		return Report{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, result := range results {
		gameRecords = append(gameRecords, result.record)
		moveRecords = append(moveRecords, result.moves...)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return Report{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return Report{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return Report{Dir: writer.Dir(), Games: gameRecords}, nil
}

// Wins counts wins per agent id and the number of drawn games.
func (r Report) Wins() (wins map[int]int, draws int) {
	wins = map[int]int{}
	for _, record := range r.Games {
		switch record.Winner {
		case game.Green.String():
			wins[record.Agent1]++
		case game.Red.String():
			wins[record.Agent2]++
		default:
			draws++
		}
	}
	return wins, draws
}
