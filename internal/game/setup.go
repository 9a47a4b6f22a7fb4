package game

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/battleship-board/internal/apperror"
	"github.com/rocketscienceinc/battleship-board/internal/board"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

// Setup - what both players agree on before placing pieces.
type Setup struct {
	Size int
	// Counts holds the number of pieces per kind, indexed like entity.Kinds.
	Counts        [len(entity.Kinds)]int
	FirstAttacker int
}

// PieceBudget is the maximum number of pieces a board of the given size holds.
func PieceBudget(size int) int {
	return size * size / (entity.ShapeSide * entity.ShapeSide)
}

// Validate checks the board size, the piece counts and the first attacker.
func (that Setup) Validate() error {
	if that.Size < board.MinSize || that.Size > board.MaxSize {
		return fmt.Errorf("%w: %d not in [%d,%d]", apperror.ErrInvalidBoardSize, that.Size, board.MinSize, board.MaxSize)
	}

	total := 0
	for i, n := range that.Counts {
		if n < 0 {
			return fmt.Errorf("%w: negative count for %s", apperror.ErrEmptyFleet, entity.Kinds[i])
		}
		total += n
	}

	if total == 0 {
		return apperror.ErrEmptyFleet
	}

	if budget := PieceBudget(that.Size); total > budget {
		return fmt.Errorf("%w: %d pieces exceed budget %d", apperror.ErrInvalidBoardSize, total, budget)
	}

	if that.FirstAttacker != 0 && that.FirstAttacker != 1 {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidFirstAttacker, that.FirstAttacker)
	}

	return nil
}

// Total returns the number of pieces each player places.
func (that Setup) Total() int {
	total := 0
	for _, n := range that.Counts {
		total += n
	}

	return total
}

// RandomSetup spends the piece budget of a board from the last kind down to the
// first, with at least one piece per kind, and picks the first attacker. A size
// of zero draws one in [MinSize, MaxSize].
func RandomSetup(rng *rand.Rand, size int) (Setup, error) {
	if size == 0 {
		size = board.MinSize + rng.Intn(board.MaxSize-board.MinSize+1)
	}

	setup := Setup{Size: size}
	if size < board.MinSize || size > board.MaxSize {
		return setup, fmt.Errorf("%w: %d not in [%d,%d]", apperror.ErrInvalidBoardSize, size, board.MinSize, board.MaxSize)
	}

	left := PieceBudget(setup.Size)
	for i := len(entity.Kinds) - 1; i >= 0; i-- {
		setup.Counts[i] = rng.Intn(left-i) + 1
		left -= setup.Counts[i]
	}

	setup.FirstAttacker = rng.Intn(2)

	return setup, nil
}

// RandomRotation returns one of 0, 90, 180 or 270.
func RandomRotation(rng *rand.Rand) int {
	return rng.Intn(4) * 90
}

// PlaceRandom retries random anchors and rotations until the piece fits.
func PlaceRandom(player *Player, kind entity.PieceKind, rng *rand.Rand, maxAttempts int) (*entity.Piece, error) {
	size := player.Board().Size()
	piece := &entity.Piece{}

	for range maxAttempts {
		piece.Update(kind, rng.Intn(size), rng.Intn(size), RandomRotation(rng))
		if player.Place(piece) == board.PlaceOK {
			return piece, nil
		}
	}

	return nil, fmt.Errorf("%w: kind %s after %d attempts", apperror.ErrPlacementExhausted, kind, maxAttempts)
}

// DeployRandom fills the player's board with the pieces the setup asks for.
func DeployRandom(player *Player, setup Setup, rng *rand.Rand, maxAttempts int) error {
	for i, kind := range entity.Kinds {
		for range setup.Counts[i] {
			if _, err := PlaceRandom(player, kind, rng, maxAttempts); err != nil {
				return err
			}
		}
	}

	return nil
}
