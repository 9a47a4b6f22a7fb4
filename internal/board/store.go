// Package board stores pieces on a square grid and resolves shots against them.
// Two storage strategies share one contract: Dense keeps every cell in memory,
// Sparse creates cells on demand inside a quadtree.
package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/battleship-board/internal/apperror"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

// Board sizes accepted by a game setup.
const (
	MinSize = 20
	MaxSize = 40
)

type Strategy string

const (
	StrategyDense  Strategy = "dense"
	StrategySparse Strategy = "sparse"
)

func ParseStrategy(s string) (Strategy, error) {
	switch strategy := Strategy(strings.ToLower(strings.TrimSpace(s))); strategy {
	case StrategyDense, StrategySparse:
		return strategy, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidStrategy, s)
	}
}

// PlaceResult - outcome of TryPlace.
type PlaceResult int

const (
	PlaceOK PlaceResult = iota
	PlaceOutOfBounds
	PlaceOverlap
)

func (r PlaceResult) String() string {
	switch r {
	case PlaceOK:
		return "ok"
	case PlaceOutOfBounds:
		return "out of bounds"
	case PlaceOverlap:
		return "overlap"
	default:
		return fmt.Sprintf("PlaceResult(%d)", int(r))
	}
}

// AttackResult - outcome of ResolveAttack.
type AttackResult int

const (
	AttackOutside AttackResult = iota - 1
	AttackMiss
	AttackHitI
	AttackHitP
	AttackHitT
	AttackHitX
	AttackHitZ
	AttackAlreadyHit
)

// AttackHit returns the hit result for kind.
func AttackHit(kind entity.PieceKind) AttackResult {
	return AttackHitI + AttackResult(kind.Index())
}

// Hit reports whether the attack struck a piece cell that was still intact.
func (r AttackResult) Hit() bool {
	return r >= AttackHitI && r <= AttackHitZ
}

// Kind returns the kind of piece that was hit.
func (r AttackResult) Kind() (entity.PieceKind, bool) {
	if !r.Hit() {
		return 0, false
	}

	return entity.Kinds[r-AttackHitI], true
}

// Shot returns the shot state the attacker records for this result. Nothing is
// recorded for attacks outside the board or on cells already hit.
func (r AttackResult) Shot() (entity.ShotState, bool) {
	switch {
	case r == AttackMiss:
		return entity.ShotMiss, true
	case r.Hit():
		kind, _ := r.Kind()
		return entity.ShotHit(kind), true
	default:
		return entity.ShotNone, false
	}
}

func (r AttackResult) String() string {
	switch {
	case r == AttackOutside:
		return "outside"
	case r == AttackMiss:
		return "miss"
	case r == AttackAlreadyHit:
		return "already hit"
	case r.Hit():
		kind, _ := r.Kind()
		return "hit " + kind.String()
	default:
		return fmt.Sprintf("AttackResult(%d)", int(r))
	}
}

// PieceStatus - state of the piece cell at a coordinate.
type PieceStatus int

const (
	PieceNone PieceStatus = iota
	PieceAlive
	PieceDestroyed
)

// Store is the board contract shared by both strategies. A Store is not safe
// for concurrent use.
type Store interface {
	Size() int
	Strategy() Strategy

	// TryPlace commits piece when every footprint cell is inside the board and
	// free. The board is left untouched on failure.
	TryPlace(piece *entity.Piece) PlaceResult
	ResolveAttack(x, y int) AttackResult
	MarkShot(x, y int, shot entity.ShotState)

	PieceStatus(x, y int) PieceStatus
	ShotStatus(x, y int) entity.ShotState
	// PieceKindAt panics when no piece occupies (x, y); check PieceStatus first.
	PieceKindAt(x, y int) entity.PieceKind

	Pieces() *PieceArena
	// Clear removes every piece and shot.
	Clear()
}

// New builds an empty store of the given strategy.
func New(strategy Strategy, size int) (Store, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	switch strategy {
	case StrategyDense:
		return NewDense(size), nil
	case StrategySparse:
		return NewSparse(size), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrInvalidStrategy, strategy)
	}
}

// cellSource is the storage half of a strategy; placement and attack rules are
// shared on top of it.
type cellSource interface {
	occupant(x, y int) entity.PieceID
	attach(x, y int, id entity.PieceID)
}

func inside(size, x, y int) bool {
	return x >= 0 && x < size && y >= 0 && y < size
}

func tryPlace(src cellSource, arena *PieceArena, size int, piece *entity.Piece) PlaceResult {
	// bounds first so occupant is never probed outside storage
	minX, minY, maxX, maxY := piece.Bounds()
	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			if piece.LocalStatus(x, y) != entity.ShapeFilled {
				continue
			}
			if !inside(size, x, y) {
				return PlaceOutOfBounds
			}
			if src.occupant(x, y) != entity.NoPiece {
				return PlaceOverlap
			}
		}
	}

	id := arena.Add(piece)
	piece.Footprint(func(x, y int) {
		src.attach(x, y, id)
	})

	return PlaceOK
}

func pieceStatus(src cellSource, arena *PieceArena, size, x, y int) PieceStatus {
	if !inside(size, x, y) {
		return PieceNone
	}

	id := src.occupant(x, y)
	if id == entity.NoPiece {
		return PieceNone
	}

	return PieceStatus(arena.Get(id).LocalStatus(x, y))
}

func resolveAttack(src cellSource, arena *PieceArena, size, x, y int) AttackResult {
	if !inside(size, x, y) {
		return AttackOutside
	}

	id := src.occupant(x, y)
	if id == entity.NoPiece {
		return AttackMiss
	}

	piece := arena.Get(id)
	switch status := piece.LocalStatus(x, y); status {
	case entity.ShapeFilled:
		piece.RegisterHit(x, y)
		return AttackHit(piece.Kind())
	case entity.ShapeHit:
		return AttackAlreadyHit
	default:
		panic(fmt.Sprintf("board.resolveAttack(): invalid piece status %d at (%d,%d)", status, x, y))
	}
}
