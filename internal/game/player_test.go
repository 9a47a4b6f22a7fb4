package game

import (
	"testing"

	"github.com/rocketscienceinc/battleship-board/internal/board"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(t *testing.T, strategy board.Strategy) *Player {
	t.Helper()

	store, err := board.New(strategy, 20)
	require.NoError(t, err)

	return NewPlayer(store)
}

func TestPlayer_Place(t *testing.T) {
	t.Run("Successful placement adds hit points", func(t *testing.T) {
		// Given: a player without pieces
		player := newTestPlayer(t, board.StrategyDense)

		// When: two pieces are placed
		require.Equal(t, board.PlaceOK, player.Place(entity.NewPiece(entity.KindI, 5, 5, 0)))
		require.Equal(t, board.PlaceOK, player.Place(entity.NewPiece(entity.KindT, 12, 12, 0)))

		// Then: each piece is worth five hit points
		assert.Equal(t, 2*PieceHP, player.HP())
		assert.True(t, player.Alive())
	})

	t.Run("Failed placement adds nothing", func(t *testing.T) {
		player := newTestPlayer(t, board.StrategySparse)
		require.Equal(t, board.PlaceOK, player.Place(entity.NewPiece(entity.KindI, 5, 5, 0)))

		assert.Equal(t, board.PlaceOverlap, player.Place(entity.NewPiece(entity.KindX, 5, 5, 0)))
		assert.Equal(t, board.PlaceOutOfBounds, player.Place(entity.NewPiece(entity.KindX, 0, 0, 0)))
		assert.Equal(t, PieceHP, player.HP())
	})
}

func TestPlayer_ReceiveAttack(t *testing.T) {
	// Given: a player with one I piece
	player := newTestPlayer(t, board.StrategySparse)
	require.Equal(t, board.PlaceOK, player.Place(entity.NewPiece(entity.KindI, 5, 5, 0)))

	// When: the same cell is shot twice, then a miss, then outside
	assert.Equal(t, board.AttackHitI, player.ReceiveAttack(5, 5))
	assert.Equal(t, board.AttackAlreadyHit, player.ReceiveAttack(5, 5))
	assert.Equal(t, board.AttackMiss, player.ReceiveAttack(0, 0))
	assert.Equal(t, board.AttackOutside, player.ReceiveAttack(-1, 0))

	// Then: only the fresh hit costs a hit point
	assert.Equal(t, PieceHP-1, player.HP())
	assert.Equal(t, 1, player.PiecesLeft())

	// When: the rest of the piece is sunk
	for y := 3; y <= 7; y++ {
		player.ReceiveAttack(5, y)
	}

	// Then: the player is out
	assert.Equal(t, 0, player.HP())
	assert.Equal(t, 0, player.PiecesLeft())
	assert.False(t, player.Alive())
}

func TestPlayer_RecordShot(t *testing.T) {
	player := newTestPlayer(t, board.StrategyDense)

	player.RecordShot(1, 1, board.AttackMiss)
	player.RecordShot(2, 2, board.AttackHitX)
	player.RecordShot(3, 3, board.AttackAlreadyHit)
	player.RecordShot(-1, 3, board.AttackOutside)

	store := player.Board()
	assert.Equal(t, entity.ShotMiss, store.ShotStatus(1, 1))
	assert.Equal(t, entity.ShotHitX, store.ShotStatus(2, 2))
	assert.Equal(t, entity.ShotNone, store.ShotStatus(3, 3))
}
