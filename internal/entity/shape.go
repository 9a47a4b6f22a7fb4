package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/battleship-board/internal/apperror"
)

// ShapeSide is the width and height of every piece footprint.
const ShapeSide = 5

const shapeCells = ShapeSide * ShapeSide

// PieceKind - one of the five piece shapes.
type PieceKind byte

const (
	KindI PieceKind = 'I'
	KindP PieceKind = 'P'
	KindT PieceKind = 'T'
	KindX PieceKind = 'X'
	KindZ PieceKind = 'Z'
)

// Kinds lists every piece kind in canonical order.
var Kinds = [...]PieceKind{KindI, KindP, KindT, KindX, KindZ}

// Bitmap cell values.
const (
	ShapeEmpty  byte = 0
	ShapeFilled byte = 1
	ShapeHit    byte = 2
)

// Canonical footprints, row-major, (0,0) at bit 24 and (4,4) at bit 0.
var footprints = map[PieceKind]uint32{
	KindI: 0b00000_00000_11111_00000_00000,
	KindP: 0b00000_00110_00110_00100_00000,
	KindT: 0b00000_01110_00100_00100_00000,
	KindX: 0b00000_01010_00100_01010_00000,
	KindZ: 0b00000_01100_00100_00110_00000,
}

// Index of the source cell in the canonical footprint for output cell (r, c).
var rotations = map[int]func(r, c int) int{
	0:   func(r, c int) int { return r*ShapeSide + c },
	90:  func(r, c int) int { return 20 + r - ShapeSide*c },
	180: func(r, c int) int { return 24 - ShapeSide*r - c },
	270: func(r, c int) int { return 4 - r + ShapeSide*c },
}

func (k PieceKind) String() string {
	return string(k)
}

// Index - position of the kind in Kinds.
func (k PieceKind) Index() int {
	for i, kind := range Kinds {
		if kind == k {
			return i
		}
	}

	panic(fmt.Sprintf("entity.PieceKind.Index(): invalid kind %q", byte(k)))
}

// Valid reports whether k is one of the five kinds.
func (k PieceKind) Valid() bool {
	_, ok := footprints[k]
	return ok
}

// ParseKind - converts user input such as "t" into a PieceKind.
func ParseKind(s string) (PieceKind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 1 || !PieceKind(s[0]).Valid() {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidPieceKind, s)
	}

	return PieceKind(s[0]), nil
}

// NormalizeRotation - maps any multiple of 90 (negative or beyond 360) to 0, 90, 180 or 270.
func NormalizeRotation(degrees int) (int, error) {
	if degrees%90 != 0 {
		return 0, fmt.Errorf("%w: %d", apperror.ErrInvalidRotation, degrees)
	}

	return ((degrees % 360) + 360) % 360, nil
}

// Shape - 5x5 piece footprint. Cells start as ShapeEmpty or ShapeFilled and
// filled cells may later become ShapeHit.
type Shape struct {
	field [shapeCells]byte
}

// NewShape builds the footprint of kind rotated clockwise by degrees.
// It panics on an unknown kind or a rotation other than 0, 90, 180 or 270.
func NewShape(kind PieceKind, degrees int) Shape {
	compressed, ok := footprints[kind]
	if !ok {
		panic(fmt.Sprintf("entity.NewShape(): invalid kind %q", byte(kind)))
	}

	rotate, ok := rotations[degrees]
	if !ok {
		panic(fmt.Sprintf("entity.NewShape(): invalid rotation %d", degrees))
	}

	var shape Shape
	for r := 0; r < ShapeSide; r++ {
		for c := 0; c < ShapeSide; c++ {
			src := rotate(r, c)
			shape.field[r*ShapeSide+c] = byte(compressed>>(shapeCells-1-src)) & 1
		}
	}

	return shape
}

// Get returns the value at (row, col). Both must be in [0, ShapeSide).
func (that *Shape) Get(row, col int) byte {
	return that.field[row*ShapeSide+col]
}

// Set stores value at (row, col). Both must be in [0, ShapeSide).
func (that *Shape) Set(row, col int, value byte) {
	that.field[row*ShapeSide+col] = value
}

// Count returns the number of cells that are part of the footprint, hit or not.
func (that *Shape) Count() int {
	n := 0
	for _, v := range that.field {
		if v != ShapeEmpty {
			n++
		}
	}

	return n
}

func (that *Shape) String() string {
	var sb strings.Builder
	for r := 0; r < ShapeSide; r++ {
		for c := 0; c < ShapeSide; c++ {
			sb.WriteByte('0' + that.Get(r, c))
		}
		if r < ShapeSide-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
