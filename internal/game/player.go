package game

import (
	"github.com/rocketscienceinc/battleship-board/internal/board"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

// PieceHP is the hit points a player gains per placed piece.
const PieceHP = 5

// Player - one side of a match: a board holding the player's own pieces and
// the shots the player fired at the opponent.
type Player struct {
	hp    int
	board board.Store
}

func NewPlayer(store board.Store) *Player {
	return &Player{board: store}
}

func (that *Player) Board() board.Store {
	return that.board
}

func (that *Player) HP() int {
	return that.hp
}

func (that *Player) Alive() bool {
	return that.hp > 0
}

// PiecesLeft counts the player's pieces that still have an intact cell.
func (that *Player) PiecesLeft() int {
	left := 0
	that.board.Pieces().Each(func(_ entity.PieceID, piece *entity.Piece) {
		if !piece.Sunk() {
			left++
		}
	})

	return left
}

// Place offers piece to the player's board.
func (that *Player) Place(piece *entity.Piece) board.PlaceResult {
	result := that.board.TryPlace(piece)
	if result == board.PlaceOK {
		that.hp += PieceHP
	}

	return result
}

// ReceiveAttack resolves an opponent's shot against this player's pieces.
func (that *Player) ReceiveAttack(x, y int) board.AttackResult {
	result := that.board.ResolveAttack(x, y)
	if result.Hit() {
		that.hp--
	}

	return result
}

// RecordShot stores the outcome of this player's own shot for later rendering.
func (that *Player) RecordShot(x, y int, result board.AttackResult) {
	if shot, ok := result.Shot(); ok {
		that.board.MarkShot(x, y, shot)
	}
}
