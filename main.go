package main

import (
	"flag"
	"fmt"
	"os"
	"reversi/engine"
	"reversi/experiments"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher"
	"reversi/searcher/agent"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type config struct {
	mode       string
	depth      int
	human      string
	seed       uint64
	pruning    bool
	goroutines int
	evaluation string
	experiment string
	games      int
	out        string
	verbose    bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.mode, "mode", "play", "play (human vs computer), selfplay or experiment")
	flag.IntVar(&cfg.depth, "depth", meta.DefaultDepth, "Search depth of the computer player")
	flag.StringVar(&cfg.human, "human", "black", "Color played by the human in play mode")
	flag.Uint64Var(&cfg.seed, "seed", uint64(time.Now().UnixNano()), "Seed of the random opponent in selfplay mode")
	flag.BoolVar(&cfg.pruning, "pruning", false, "Use alpha-beta pruning")
	flag.IntVar(&cfg.goroutines, "goroutines", 1, "Number of goroutines searching the root moves")
	flag.StringVar(&cfg.evaluation, "eval", "material", "Evaluation function: material or discs")
	flag.StringVar(&cfg.experiment, "experiment", "depth", "Experiment to run: depth, evaluation or throughput")
	flag.IntVar(&cfg.games, "games", meta.ExperimentGames, "Games per experiment matchup")
	flag.StringVar(&cfg.out, "out", "experiments", "Directory for experiment records")
	flag.BoolVar(&cfg.verbose, "v", false, "Log every move and search")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msgf("%s failed", cfg.mode)
	}
}

func run(cfg config) error {
	switch cfg.mode {
	case "play":
		return play(cfg)
	case "selfplay":
		return selfplay(cfg)
	case "experiment":
		return experiment(cfg)
	default:
		return fmt.Errorf("unknown mode %q", cfg.mode)
	}
}

func play(cfg config) error {
	computer, err := createMinimax(cfg)
	if err != nil {
		return err
	}
	human := agent.NewConsoleAgent(os.Stdin, os.Stdout)

	// A human is asked again after every illegal move. Minimax only proposes legal moves.
	var e *engine.LocalEngine
	switch cfg.human {
	case "black":
		e = engine.NewLocalEngine(human, agent.NewMinimaxAgent(computer), engine.WithMaxAttempts(0))
	case "white":
		e = engine.NewLocalEngine(agent.NewMinimaxAgent(computer), human, engine.WithMaxAttempts(0))
	default:
		return fmt.Errorf("unknown color %q", cfg.human)
	}

	winner, _, _, err := e.Run()
	if err != nil {
		return err
	}
	fmt.Println(e.State)
	if winner == game.Empty {
		fmt.Println("Draw!")
	} else {
		fmt.Printf("%s wins!\n", winner)
	}
	return nil
}

func selfplay(cfg config) error {
	computer, err := createMinimax(cfg)
	if err != nil {
		return err
	}
	e := engine.NewLocalEngine(agent.NewMinimaxAgent(computer), agent.NewRandomAgent(cfg.seed))

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		return err
	}
	log.Info().
		Stringer("winner", winner).
		Int("black", gameMetric.BlackDiscs).
		Int("white", gameMetric.WhiteDiscs).
		Int("moves", gameMetric.TotalMoves).
		Dur("duration", gameMetric.Duration).
		Msg("minimax (black) vs random (white)")
	return nil
}

func experiment(cfg config) error {
	var dir string
	var err error
	switch cfg.experiment {
	case "depth":
		dir, err = experiments.RunDepthExperiment(cfg.out, cfg.games)
	case "evaluation":
		dir, err = experiments.RunEvaluationExperiment(cfg.out, cfg.games)
	case "throughput":
		dir, err = experiments.RunThroughputExperiment(cfg.out, cfg.games)
	default:
		return fmt.Errorf("unknown experiment %q", cfg.experiment)
	}
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("experiment records written")
	return nil
}

func createMinimax(cfg config) (*searcher.Minimax, error) {
	if cfg.depth <= 0 {
		return nil, fmt.Errorf("depth must be positive, got %d", cfg.depth)
	}
	if cfg.goroutines <= 0 {
		return nil, fmt.Errorf("goroutines must be positive, got %d", cfg.goroutines)
	}
	evaluate, ok := game.EvaluationFn(cfg.evaluation)
	if !ok {
		return nil, fmt.Errorf("unknown evaluation %q", cfg.evaluation)
	}
	options := []searcher.Option{
		searcher.WithDepth(cfg.depth),
		searcher.WithGoroutines(cfg.goroutines),
		searcher.WithEvaluationFn(evaluate),
	}
	if cfg.pruning {
		options = append(options, searcher.WithPruning())
	}
	return searcher.NewMinimax(options...), nil
}
