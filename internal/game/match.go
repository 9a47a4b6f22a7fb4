package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/battleship-board/internal/apperror"
	"github.com/rocketscienceinc/battleship-board/internal/board"
	"github.com/rocketscienceinc/battleship-board/internal/fleet"
)

// Match - two players taking turns. The attacker and defender are tracked
// explicitly and swap after every turn.
type Match struct {
	ID      string
	logger  *slog.Logger
	players [2]*Player

	attacking int
	defending int

	turns    int
	finished bool
	winner   int
}

func NewMatch(logger *slog.Logger, id string, firstAttacker int, first, second *Player) *Match {
	return &Match{
		ID:        id,
		logger:    logger.With("component", "match", "match_id", id),
		players:   [2]*Player{first, second},
		attacking: firstAttacker,
		defending: 1 - firstAttacker,
	}
}

func (that *Match) Player(i int) *Player {
	return that.players[i]
}

func (that *Match) Attacking() int {
	return that.attacking
}

func (that *Match) Defending() int {
	return that.defending
}

func (that *Match) Turns() int {
	return that.turns
}

func (that *Match) Over() bool {
	return that.finished
}

// Winner returns the index of the winning player once the match is over.
func (that *Match) Winner() (int, bool) {
	return that.winner, that.finished
}

// PlayTurn fires the attacker's shot at (x, y), records it on the attacker's
// board and hands the turn over.
func (that *Match) PlayTurn(x, y int) (board.AttackResult, error) {
	if that.finished {
		return board.AttackOutside, apperror.ErrMatchFinished
	}

	attacker, defender := that.players[that.attacking], that.players[that.defending]

	result := defender.ReceiveAttack(x, y)
	attacker.RecordShot(x, y, result)
	that.turns++

	that.logger.Debug("Turn played",
		"turn", that.turns, "attacker", that.attacking, "x", x, "y", y,
		"result", result.String(), "defender_hp", defender.HP())

	if !defender.Alive() {
		that.finished = true
		that.winner = that.attacking
		that.logger.Info("Match finished", "winner", that.winner, "turns", that.turns)
	}

	that.attacking, that.defending = that.defending, that.attacking

	return result, nil
}

// Play lets the bots shoot until the match ends, maxTurns is reached (0 means
// no limit), a bot runs out of targets, or ctx is canceled.
func (that *Match) Play(ctx context.Context, bots [2]*Bot, maxTurns int) error {
	for !that.finished {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("match interrupted: %w", err)
		}

		if maxTurns > 0 && that.turns >= maxTurns {
			that.logger.Info("Turn limit reached", "turns", that.turns)
			return nil
		}

		x, y, ok := bots[that.attacking].Next()
		if !ok {
			that.logger.Info("Attacker has no targets left", "attacker", that.attacking)
			return nil
		}

		if _, err := that.PlayTurn(x, y); err != nil {
			return err
		}
	}

	return nil
}

// DeployFleet places the requested pieces in order. A request the board rejects
// is an error: a fixed layout cannot be retried.
func DeployFleet(player *Player, requests []fleet.Request) error {
	for i, request := range requests {
		if result := player.Place(request.Piece()); result != board.PlaceOK {
			return fmt.Errorf("%w: piece %d (%s at %d,%d): %s",
				apperror.ErrPlacementRejected, i, request.Kind, request.X, request.Y, result)
		}
	}

	return nil
}
