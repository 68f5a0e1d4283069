package experiments

import (
	"awale/agent"
	"awale/engine"
	"awale/experiments/metrics"
	"awale/game"
	"awale/meta"
	"awale/searcher"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Result summarizes the games of one matchup from agent1's side.
type Result struct {
	Agent1 metrics.AgentConfig
	Agent2 metrics.AgentConfig
	Wins   int
	Losses int
	Draws  int
	Moves  int
}

// Experiment plays every matchup a number of times, alternating the starting
// player, and optionally stores the records as CSV under OutputDir.
type Experiment struct {
	Name      string
	Games     int // Per matchup
	Seeds     int // Initial seeds per cell
	OutputDir string
	MatchUps  [][2]metrics.AgentConfig
}

// DepthMatchUps pairs a random baseline and every shallower depth against
// each depth up to maxDepth.
func DepthMatchUps(maxDepth int) [][2]metrics.AgentConfig {
	baseline := metrics.AgentConfig{ID: 0, Random: true, Seed: 1}
	configs := []metrics.AgentConfig{baseline}
	for d := 1; d <= maxDepth; d++ {
		configs = append(configs, metrics.AgentConfig{ID: d, Depth: d})
	}

	matchUps := [][2]metrics.AgentConfig{}
	for i := 1; i < len(configs); i++ {
		for j := 0; j < i; j++ {
			matchUps = append(matchUps, [2]metrics.AgentConfig{configs[i], configs[j]})
		}
	}
	return matchUps
}

func (x Experiment) Run() ([]Result, error) {
	count := 0
	results := []Result{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", x.Name)

	for mi, matchUp := range x.MatchUps {
		config1, config2 := matchUp[0], matchUp[1]
		result := Result{Agent1: config1, Agent2: config2}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(x.MatchUps), config1, config2)

		for i := 0; i < x.Games; i++ {
			// agent1 plays player 0 in even games
			first := game.Player(i % 2)
			winner, gameMetric, moveMetrics := x.runGame(config1, config2, first)
			count++

			switch winner {
			case first:
				result.Wins++
			case first.Other():
				result.Losses++
			default:
				result.Draws++
			}
			result.Moves += gameMetric.TotalMoves

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
		}
		results = append(results, result)
		log.Info().Msgf("completed matchup %d of %d: %d wins, %d losses, %d draws", mi+1, len(x.MatchUps), result.Wins, result.Losses, result.Draws)
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	if x.OutputDir == "" {
		return results, nil
	}
	if err := x.store(gameRecords, moveRecords); err != nil {
		return results, err
	}
	return results, nil
}

func (x Experiment) store(gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(x.OutputDir, x.Name)
	if err != nil {
		return errors.Wrap(err, "failed to create experiment writer")
	}

	seen := map[int]bool{}
	configs := []metrics.AgentConfig{}
	for _, matchUp := range x.MatchUps {
		for _, config := range matchUp {
			if !seen[config.ID] {
				seen[config.ID] = true
				configs = append(configs, config)
			}
		}
	}

	if err := writer.WriteAgentConfigs(configs); err != nil {
		return errors.Wrap(err, "failed to store agent configs")
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return errors.Wrap(err, "failed to store game records")
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return errors.Wrap(err, "failed to store move records")
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return nil
}

// runGame plays config1 as first and config2 as its opponent
func (x Experiment) runGame(config1, config2 metrics.AgentConfig, first game.Player) (game.Player, metrics.GameMetric, []metrics.MoveMetric) {
	var agents [2]agent.Agent
	agents[first] = createAgent(config1)
	agents[first.Other()] = createAgent(config2)

	seeds := x.Seeds
	if seeds <= 0 {
		seeds = meta.InitialSeeds
	}
	e := engine.NewLocalEngine(game.NewBoard(seeds), game.South, agents)
	e.Evaluate = game.EvaluateMaterial
	return e.Run()
}

func createAgent(config metrics.AgentConfig) agent.Agent {
	if config.Random {
		return agent.NewRandomAgent(config.Seed)
	}
	return agent.NewAdvisorAgent(searcher.NewAdvisor(searcher.WithDepth(config.Depth), searcher.WithMetrics()))
}
