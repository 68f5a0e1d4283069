package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"awale/experiments"
	"awale/game"
	"awale/meta"
	"awale/searcher"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	maxDepth := flag.Int("depth", meta.DefaultDepth, "deepest advisor taking part in the experiment")
	games := flag.Int("games", 10, "games per matchup")
	seeds := flag.Int("seeds", meta.InitialSeeds, "initial seeds per cell")
	out := flag.String("out", "", "directory for the CSV records, none if empty")
	verbose := flag.Bool("v", false, "log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	board := game.NewBoard(*seeds)
	log.Info().Msgf("opening suggestion at depth %d: cell %d", *maxDepth, searcher.Suggest(board, game.South, *maxDepth))

	x := experiments.Experiment{
		Name:      "depth",
		Games:     *games,
		Seeds:     *seeds,
		OutputDir: *out,
		MatchUps:  experiments.DepthMatchUps(*maxDepth),
	}
	results, err := x.Run()
	if err != nil {
		log.Error().Err(err).Msg("experiment failed")
	}

	if err := render(results); err != nil {
		log.Fatal().Err(err).Msg("failed to render results")
	}
}

func render(results []experiments.Result) error {
	data := pterm.TableData{{"Agent 1", "Agent 2", "Wins", "Losses", "Draws", "Avg moves"}}
	for _, r := range results {
		games := r.Wins + r.Losses + r.Draws
		avg := 0.0
		if games > 0 {
			avg = float64(r.Moves) / float64(games)
		}
		data = append(data, []string{
			describe(r.Agent1.Random, r.Agent1.Depth),
			describe(r.Agent2.Random, r.Agent2.Depth),
			fmt.Sprint(r.Wins),
			fmt.Sprint(r.Losses),
			fmt.Sprint(r.Draws),
			fmt.Sprintf("%.1f", avg),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func describe(random bool, depth int) string {
	if random {
		return "random"
	}
	return fmt.Sprintf("depth %d", depth)
}
