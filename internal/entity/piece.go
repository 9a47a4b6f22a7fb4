package entity

// PieceID - opaque handle of a piece inside a board's piece arena. Zero means no piece.
type PieceID uint32

const NoPiece PieceID = 0

// half is the distance from the anchor to the edge of the footprint.
const half = ShapeSide / 2

// Piece - a shape anchored on the board by its center cell.
type Piece struct {
	kind    PieceKind
	anchorX int
	anchorY int
	shape   Shape
}

// NewPiece returns a piece ready to be offered to a board.
func NewPiece(kind PieceKind, anchorX, anchorY, degrees int) *Piece {
	piece := &Piece{}
	piece.Update(kind, anchorX, anchorY, degrees)

	return piece
}

// Update - rebuilds the shape and moves the anchor. Panics on an invalid kind or rotation.
func (that *Piece) Update(kind PieceKind, anchorX, anchorY, degrees int) {
	that.shape = NewShape(kind, degrees)
	that.kind = kind
	that.anchorX = anchorX
	that.anchorY = anchorY
}

func (that *Piece) Kind() PieceKind {
	return that.kind
}

func (that *Piece) Anchor() (int, int) {
	return that.anchorX, that.anchorY
}

// Bounds returns the inclusive board rectangle covered by the footprint window.
func (that *Piece) Bounds() (minX, minY, maxX, maxY int) {
	return that.anchorX - half, that.anchorY - half, that.anchorX + half, that.anchorY + half
}

// LocalStatus returns the shape value under board coordinate (x, y), which must
// lie inside Bounds.
func (that *Piece) LocalStatus(x, y int) byte {
	return that.shape.Get(x-(that.anchorX-half), y-(that.anchorY-half))
}

// RegisterHit marks the shape cell under board coordinate (x, y) as hit.
func (that *Piece) RegisterHit(x, y int) {
	that.shape.Set(x-(that.anchorX-half), y-(that.anchorY-half), ShapeHit)
}

// Footprint calls fn for every board coordinate that is part of the shape.
func (that *Piece) Footprint(fn func(x, y int)) {
	minX, minY, maxX, maxY := that.Bounds()
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if that.LocalStatus(x, y) != ShapeEmpty {
				fn(x, y)
			}
		}
	}
}

// Sunk reports whether every footprint cell has been hit.
func (that *Piece) Sunk() bool {
	for _, v := range that.shape.field {
		if v == ShapeFilled {
			return false
		}
	}

	return true
}
