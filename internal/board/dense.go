package board

import (
	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

// Dense keeps all size*size cells in one slice: constant-time access at the
// cost of memory proportional to the board area.
type Dense struct {
	size   int
	cells  []entity.Cell
	pieces *PieceArena
}

var _ Store = (*Dense)(nil)

func NewDense(size int) *Dense {
	return &Dense{
		size:   size,
		cells:  make([]entity.Cell, size*size),
		pieces: NewPieceArena(),
	}
}

func (that *Dense) Size() int {
	return that.size
}

func (that *Dense) Strategy() Strategy {
	return StrategyDense
}

func (that *Dense) cell(x, y int) *entity.Cell {
	return &that.cells[x*that.size+y]
}

func (that *Dense) occupant(x, y int) entity.PieceID {
	return that.cell(x, y).Piece
}

func (that *Dense) attach(x, y int, id entity.PieceID) {
	that.cell(x, y).Piece = id
}

func (that *Dense) TryPlace(piece *entity.Piece) PlaceResult {
	return tryPlace(that, that.pieces, that.size, piece)
}

func (that *Dense) ResolveAttack(x, y int) AttackResult {
	return resolveAttack(that, that.pieces, that.size, x, y)
}

func (that *Dense) MarkShot(x, y int, shot entity.ShotState) {
	if !inside(that.size, x, y) {
		return
	}

	that.cell(x, y).Shot = shot
}

func (that *Dense) PieceStatus(x, y int) PieceStatus {
	return pieceStatus(that, that.pieces, that.size, x, y)
}

func (that *Dense) ShotStatus(x, y int) entity.ShotState {
	if !inside(that.size, x, y) {
		return entity.ShotNone
	}

	return that.cell(x, y).Shot
}

func (that *Dense) PieceKindAt(x, y int) entity.PieceKind {
	return that.pieces.Get(that.cell(x, y).Piece).Kind()
}

func (that *Dense) Pieces() *PieceArena {
	return that.pieces
}

func (that *Dense) Clear() {
	clear(that.cells)
	that.pieces.Clear()
}
