package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/battleship-board/internal/board"
	"github.com/rocketscienceinc/battleship-board/internal/config"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
	"github.com/rocketscienceinc/battleship-board/internal/fleet"
	"github.com/rocketscienceinc/battleship-board/internal/game"
	"github.com/rocketscienceinc/battleship-board/internal/repository"
	"github.com/rocketscienceinc/battleship-board/internal/repository/storage"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - sets up both boards, plays one match between two bots and stores its summary.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	strategy, err := board.ParseStrategy(conf.Board.Strategy)
	if err != nil {
		return fmt.Errorf("invalid board config: %w", err)
	}

	seed := conf.Setup.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) //nolint: gosec // game randomness

	match, setup, err := prepareMatch(logger, conf, strategy, rng)
	if err != nil {
		return err
	}

	log.Info("Match ready",
		"match_id", match.ID, "seed", seed, "size", setup.Size, "strategy", strategy,
		"pieces", setup.Total(), "first_attacker", setup.FirstAttacker)

	for i := range 2 {
		log.Debug("Pieces map", "player", i, "rows", game.RenderPieces(match.Player(i).Board()))
	}

	bots := [2]*game.Bot{game.NewBot(setup.Size, rng), game.NewBot(setup.Size, rng)}
	if err = match.Play(ctx, bots, conf.Match.MaxTurns); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	for i := range 2 {
		log.Debug("Shots map", "player", i, "rows", game.RenderShots(match.Player(i).Board()))
	}

	summary := summarize(match, setup, strategy)
	log.Info("Match summary",
		"match_id", summary.ID, "finished", summary.Finished, "winner", summary.Winner,
		"turns", summary.Turns, "hp", summary.HP,
		"pieces_left", [2]int{match.Player(0).PiecesLeft(), match.Player(1).PiecesLeft()})

	if !conf.Redis.Enabled {
		return nil
	}

	return saveSummary(ctx, log, conf, summary)
}

func prepareMatch(logger *slog.Logger, conf *config.Config, strategy board.Strategy, rng *rand.Rand) (*game.Match, game.Setup, error) {
	if conf.Setup.FleetFile != "" {
		return prepareFleetMatch(logger, conf.Setup.FleetFile, strategy)
	}

	setup, err := game.RandomSetup(rng, conf.Board.Size)
	if err != nil {
		return nil, setup, fmt.Errorf("invalid setup: %w", err)
	}

	players, err := newPlayers(strategy, setup.Size)
	if err != nil {
		return nil, setup, err
	}

	for i, player := range players {
		if err = game.DeployRandom(player, setup, rng, conf.Setup.MaxPlacementAttempts); err != nil {
			return nil, setup, fmt.Errorf("could not deploy player %d: %w", i, err)
		}
	}

	return game.NewMatch(logger, uuid.NewString(), setup.FirstAttacker, players[0], players[1]), setup, nil
}

func prepareFleetMatch(logger *slog.Logger, path string, strategy board.Strategy) (*game.Match, game.Setup, error) {
	layout, err := fleet.Load(path)
	if err != nil {
		return nil, game.Setup{}, err
	}

	setup := game.Setup{Size: layout.Size, FirstAttacker: layout.FirstAttacker}

	players, err := newPlayers(strategy, layout.Size)
	if err != nil {
		return nil, setup, err
	}

	for i, player := range players {
		requests, err := layout.Requests(i)
		if err != nil {
			return nil, setup, fmt.Errorf("invalid fleet: %w", err)
		}

		setup.Counts = fleet.Counts(requests)
		if err = setup.Validate(); err != nil {
			return nil, setup, fmt.Errorf("invalid fleet for player %d: %w", i, err)
		}

		if err = game.DeployFleet(player, requests); err != nil {
			return nil, setup, fmt.Errorf("could not deploy player %d: %w", i, err)
		}
	}

	return game.NewMatch(logger, uuid.NewString(), setup.FirstAttacker, players[0], players[1]), setup, nil
}

func newPlayers(strategy board.Strategy, size int) ([2]*game.Player, error) {
	var players [2]*game.Player
	for i := range players {
		store, err := board.New(strategy, size)
		if err != nil {
			return players, fmt.Errorf("could not create board: %w", err)
		}
		players[i] = game.NewPlayer(store)
	}

	return players, nil
}

func summarize(match *game.Match, setup game.Setup, strategy board.Strategy) *entity.MatchSummary {
	winner, finished := match.Winner()
	if !finished {
		winner = -1
	}

	return &entity.MatchSummary{
		ID:       match.ID,
		Size:     setup.Size,
		Strategy: string(strategy),
		Pieces:   setup.Total(),
		Turns:    match.Turns(),
		Finished: finished,
		Winner:   winner,
		HP:       [2]int{match.Player(0).HP(), match.Player(1).HP()},
	}
}

func saveSummary(ctx context.Context, log *slog.Logger, conf *config.Config, summary *entity.MatchSummary) error {
	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	if err = repository.NewMatchRepository(redisStorage).CreateOrUpdate(ctx, summary); err != nil {
		return fmt.Errorf("could not save match summary: %w", err)
	}

	log.Info("Match summary saved", "match_id", summary.ID)

	return nil
}
