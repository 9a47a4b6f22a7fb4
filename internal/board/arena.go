package board

import (
	"fmt"

	"github.com/kamstrup/intmap"

	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

// PieceArena owns every piece placed on a board. Cells refer to pieces by id,
// and the arena is swept as a whole when the board is cleared.
type PieceArena struct {
	pieces *intmap.Map[entity.PieceID, *entity.Piece]
	order  []entity.PieceID
	next   entity.PieceID
}

func NewPieceArena() *PieceArena {
	return &PieceArena{
		pieces: intmap.New[entity.PieceID, *entity.Piece](16),
		next:   entity.NoPiece + 1,
	}
}

// Add takes ownership of piece and returns its id.
func (that *PieceArena) Add(piece *entity.Piece) entity.PieceID {
	id := that.next
	that.next++

	that.pieces.Put(id, piece)
	that.order = append(that.order, id)

	return id
}

// Get returns the piece with id. It panics on an unknown id, which means a cell
// refers to a piece this arena never owned.
func (that *PieceArena) Get(id entity.PieceID) *entity.Piece {
	piece, ok := that.pieces.Get(id)
	if !ok {
		panic(fmt.Sprintf("board.PieceArena.Get(): unknown piece id %d", id))
	}

	return piece
}

// Each calls fn for every piece in placement order.
func (that *PieceArena) Each(fn func(id entity.PieceID, piece *entity.Piece)) {
	for _, id := range that.order {
		fn(id, that.Get(id))
	}
}

func (that *PieceArena) Len() int {
	return that.pieces.Len()
}

// Clear drops every piece. Ids are not reused.
func (that *PieceArena) Clear() {
	that.pieces.Clear()
	that.order = that.order[:0]
}
