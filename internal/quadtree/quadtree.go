// Package quadtree implements a point-region quadtree over integer board
// coordinates. Nodes live in a slice and refer to their children by index, so
// the whole tree is a single allocation that can be inspected or dropped at once.
package quadtree

import (
	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

// Quadrant order. X grows downward and Y grows rightward, so "top" is the
// half with the smaller X.
const (
	TopLeft = iota
	TopRight
	BottomLeft
	BottomRight
)

// Point - integer board coordinate.
type Point struct {
	X, Y int
}

// Rect - inclusive rectangle [TopLeft, BotRight].
type Rect struct {
	TopLeft  Point
	BotRight Point
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.TopLeft.X && p.X <= r.BotRight.X && p.Y >= r.TopLeft.Y && p.Y <= r.BotRight.Y
}

// unit reports whether the rectangle spans at most one point on each axis.
func (r Rect) unit() bool {
	return r.BotRight.X-r.TopLeft.X < 1 && r.BotRight.Y-r.TopLeft.Y < 1
}

// mid rounds toward TopLeft, so the upper-left child is always smaller than r.
func (r Rect) mid() Point {
	return Point{
		X: r.TopLeft.X + (r.BotRight.X-r.TopLeft.X)/2,
		Y: r.TopLeft.Y + (r.BotRight.Y-r.TopLeft.Y)/2,
	}
}

// quadrant returns the child index holding p. Points on the midpoint go to
// the lower-indexed quadrant.
func (r Rect) quadrant(p Point) int {
	m := r.mid()
	q := TopLeft
	if p.X > m.X {
		q += BottomLeft
	}
	if p.Y > m.Y {
		q += TopRight
	}

	return q
}

func (r Rect) child(q int) Rect {
	m := r.mid()
	c := r
	if q&BottomLeft == 0 {
		c.BotRight.X = m.X
	} else {
		c.TopLeft.X = m.X + 1
	}
	if q&TopRight == 0 {
		c.BotRight.Y = m.Y
	} else {
		c.TopLeft.Y = m.Y + 1
	}

	return c
}

// none marks an absent child. The root sits at index 0 and is never a child.
const none = 0

type node struct {
	bounds   Rect
	children [4]int32

	// unit nodes only
	point Point
	cell  *entity.Cell
}

// Tree - quadtree storing at most one cell per point.
type Tree struct {
	nodes []node
	cells int
}

// New returns a tree covering [0, size) on both axes.
func New(size int) *Tree {
	return newRect(Rect{BotRight: Point{X: size - 1, Y: size - 1}})
}

func newRect(bounds Rect) *Tree {
	return &Tree{nodes: []node{{bounds: bounds}}}
}

func (that *Tree) bounds() Rect {
	return that.nodes[0].bounds
}

// Insert stores cell at p. Points outside the tree are ignored, and so is a
// second insert at an occupied point: the first cell stays. It reports whether
// cell was stored.
func (that *Tree) Insert(p Point, cell *entity.Cell) bool {
	if !that.nodes[0].bounds.Contains(p) {
		return false
	}

	idx := 0
	for !that.nodes[idx].bounds.unit() {
		q := that.nodes[idx].bounds.quadrant(p)
		next := that.nodes[idx].children[q]
		if next == none {
			next = int32(len(that.nodes))
			that.nodes = append(that.nodes, node{bounds: that.nodes[idx].bounds.child(q)})
			that.nodes[idx].children[q] = next
		}
		idx = int(next)
	}

	leaf := &that.nodes[idx]
	if leaf.cell != nil {
		return false
	}

	leaf.point = p
	leaf.cell = cell
	that.cells++

	return true
}

// Search returns the cell stored at p.
func (that *Tree) Search(p Point) (*entity.Cell, bool) {
	idx, ok := that.leaf(p)
	if !ok {
		return nil, false
	}

	leaf := &that.nodes[idx]
	if leaf.cell == nil || leaf.point != p {
		return nil, false
	}

	return leaf.cell, true
}

// HasCell reports whether a cell occupied by a piece is stored at p.
func (that *Tree) HasCell(p Point) bool {
	cell, ok := that.Search(p)
	return ok && cell.HasPiece()
}

// Len returns the number of stored cells.
func (that *Tree) Len() int {
	return that.cells
}

// nodeCount returns the number of materialized nodes, root included.
func (that *Tree) nodeCount() int {
	return len(that.nodes)
}

// walk calls fn for every stored cell below idx in depth-first quadrant order.
func (that *Tree) walk(idx int, fn func(Point, *entity.Cell)) {
	n := &that.nodes[idx]
	if n.cell != nil {
		fn(n.point, n.cell)
	}

	for _, child := range n.children {
		if child != none {
			that.walk(int(child), fn)
		}
	}
}

// leaf descends to the unit node that would hold p.
func (that *Tree) leaf(p Point) (int, bool) {
	if !that.nodes[0].bounds.Contains(p) {
		return 0, false
	}

	idx := 0
	for !that.nodes[idx].bounds.unit() {
		next := that.nodes[idx].children[that.nodes[idx].bounds.quadrant(p)]
		if next == none {
			return 0, false
		}
		idx = int(next)
	}

	return idx, true
}
