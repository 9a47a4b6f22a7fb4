package board

import (
	"github.com/rocketscienceinc/battleship-board/internal/entity"
	"github.com/rocketscienceinc/battleship-board/internal/quadtree"
)

// Sparse creates a cell only when a piece or a shot lands on it. Lookups walk
// a quadtree, so memory follows the number of touched cells instead of the
// board area.
type Sparse struct {
	size   int
	tree   *quadtree.Tree
	pieces *PieceArena
}

var _ Store = (*Sparse)(nil)

func NewSparse(size int) *Sparse {
	return &Sparse{
		size:   size,
		tree:   quadtree.New(size),
		pieces: NewPieceArena(),
	}
}

func (that *Sparse) Size() int {
	return that.size
}

func (that *Sparse) Strategy() Strategy {
	return StrategySparse
}

// Cells returns the number of cells created so far.
func (that *Sparse) Cells() int {
	return that.tree.Len()
}

func (that *Sparse) occupant(x, y int) entity.PieceID {
	cell, ok := that.tree.Search(quadtree.Point{X: x, Y: y})
	if !ok {
		return entity.NoPiece
	}

	return cell.Piece
}

func (that *Sparse) attach(x, y int, id entity.PieceID) {
	p := quadtree.Point{X: x, Y: y}
	if cell, ok := that.tree.Search(p); ok {
		// a shot may have created the cell before the piece arrived
		cell.Piece = id
		return
	}

	that.tree.Insert(p, &entity.Cell{Piece: id})
}

func (that *Sparse) TryPlace(piece *entity.Piece) PlaceResult {
	return tryPlace(that, that.pieces, that.size, piece)
}

func (that *Sparse) ResolveAttack(x, y int) AttackResult {
	return resolveAttack(that, that.pieces, that.size, x, y)
}

// MarkShot updates the existing cell in place, or creates one holding only the shot.
func (that *Sparse) MarkShot(x, y int, shot entity.ShotState) {
	p := quadtree.Point{X: x, Y: y}
	if cell, ok := that.tree.Search(p); ok {
		cell.Shot = shot
		return
	}

	that.tree.Insert(p, &entity.Cell{Shot: shot})
}

func (that *Sparse) PieceStatus(x, y int) PieceStatus {
	return pieceStatus(that, that.pieces, that.size, x, y)
}

func (that *Sparse) ShotStatus(x, y int) entity.ShotState {
	cell, ok := that.tree.Search(quadtree.Point{X: x, Y: y})
	if !ok {
		return entity.ShotNone
	}

	return cell.Shot
}

func (that *Sparse) PieceKindAt(x, y int) entity.PieceKind {
	return that.pieces.Get(that.occupant(x, y)).Kind()
}

func (that *Sparse) Pieces() *PieceArena {
	return that.pieces
}

func (that *Sparse) Clear() {
	that.tree = quadtree.New(that.size)
	that.pieces.Clear()
}
