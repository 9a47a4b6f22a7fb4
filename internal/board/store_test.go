package board

import (
	"testing"

	"github.com/rocketscienceinc/battleship-board/internal/apperror"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{StrategyDense, StrategySparse}

func newStore(t *testing.T, strategy Strategy, size int) Store {
	t.Helper()

	store, err := New(strategy, size)
	require.NoError(t, err)

	return store
}

// snapshot records the piece status of every cell.
func snapshot(store Store) [][]PieceStatus {
	size := store.Size()
	statuses := make([][]PieceStatus, size)
	for x := range size {
		statuses[x] = make([]PieceStatus, size)
		for y := range size {
			statuses[x][y] = store.PieceStatus(x, y)
		}
	}

	return statuses
}

func TestNew(t *testing.T) {
	t.Run("Rejects unknown strategies", func(t *testing.T) {
		_, err := New("octree", 20)

		assert.ErrorIs(t, err, apperror.ErrInvalidStrategy)
	})

	t.Run("Rejects empty boards", func(t *testing.T) {
		_, err := New(StrategyDense, 0)

		assert.ErrorIs(t, err, apperror.ErrInvalidBoardSize)
	})

	t.Run("Parses strategy names", func(t *testing.T) {
		strategy, err := ParseStrategy(" Sparse ")

		require.NoError(t, err)
		assert.Equal(t, StrategySparse, strategy)
	})
}

func TestStore_TryPlace(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Run("Placed piece occupies exactly its footprint", func(t *testing.T) {
				// Given: an empty board
				store := newStore(t, strategy, 20)
				piece := entity.NewPiece(entity.KindT, 10, 10, 90)

				// When: a T piece is placed
				result := store.TryPlace(piece)

				// Then: footprint cells are alive and the rest of the window is empty
				require.Equal(t, PlaceOK, result)
				for x := 8; x <= 12; x++ {
					for y := 8; y <= 12; y++ {
						expected := PieceNone
						if piece.LocalStatus(x, y) == entity.ShapeFilled {
							expected = PieceAlive
							assert.Equal(t, entity.KindT, store.PieceKindAt(x, y))
						}
						assert.Equal(t, expected, store.PieceStatus(x, y), "(%d,%d)", x, y)
					}
				}
				assert.Equal(t, 1, store.Pieces().Len())
			})

			t.Run("Out of bounds leaves the board untouched", func(t *testing.T) {
				// Given: a board with one piece
				store := newStore(t, strategy, 20)
				require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindX, 5, 5, 0)))
				before := snapshot(store)

				// When: an I piece sticks out of the right edge
				result := store.TryPlace(entity.NewPiece(entity.KindI, 10, 19, 0))

				// Then: placement fails and nothing changed
				assert.Equal(t, PlaceOutOfBounds, result)
				assert.Equal(t, before, snapshot(store))
				assert.Equal(t, 1, store.Pieces().Len())
			})

			t.Run("Padding outside the board does not matter", func(t *testing.T) {
				store := newStore(t, strategy, 20)

				// the I piece rotated by 90 is a column, its window sticks out but its cells do not
				result := store.TryPlace(entity.NewPiece(entity.KindI, 2, 0, 90))

				assert.Equal(t, PlaceOK, result)
			})

			t.Run("Overlap leaves the board untouched", func(t *testing.T) {
				// Given: a board with an I piece on row 10
				store := newStore(t, strategy, 20)
				require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindI, 10, 10, 0)))
				before := snapshot(store)

				// When: a vertical I crosses it
				result := store.TryPlace(entity.NewPiece(entity.KindI, 10, 12, 90))

				// Then: placement fails and nothing changed
				assert.Equal(t, PlaceOverlap, result)
				assert.Equal(t, before, snapshot(store))
			})

			t.Run("Bounds are checked before occupancy", func(t *testing.T) {
				store := newStore(t, strategy, 20)
				require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindI, 0, 2, 0)))

				// overlaps at (0,0..2) but also leaves the board at (-1, ...)
				result := store.TryPlace(entity.NewPiece(entity.KindX, 0, 1, 0))

				assert.Equal(t, PlaceOutOfBounds, result)
			})

			t.Run("Interlocking pieces fit", func(t *testing.T) {
				store := newStore(t, strategy, 20)

				require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindX, 5, 5, 0)))
				// the windows overlap but the footprints do not
				assert.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindX, 5, 6, 0)))
			})
		})
	}
}

func TestStore_ResolveAttack(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			t.Run("Small board example", func(t *testing.T) {
				// Given: a 5x5 board with an I piece at the center
				store := newStore(t, strategy, 5)
				require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindI, 2, 2, 0)))

				// Then: the first shot at the anchor hits, the second finds it hit
				assert.Equal(t, AttackHitI, store.ResolveAttack(2, 2))
				assert.Equal(t, AttackAlreadyHit, store.ResolveAttack(2, 2))
				assert.Equal(t, PieceDestroyed, store.PieceStatus(2, 2))

				// Then: empty and outside cells
				assert.Equal(t, AttackMiss, store.ResolveAttack(0, 0))
				assert.Equal(t, AttackOutside, store.ResolveAttack(5, 0))
				assert.Equal(t, AttackOutside, store.ResolveAttack(0, -1))
			})

			t.Run("Hit codes follow the piece kind", func(t *testing.T) {
				store := newStore(t, strategy, 30)
				for i, kind := range entity.Kinds {
					require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(kind, 3+6*i, 3, 0)))
				}

				for i, kind := range entity.Kinds {
					result := store.ResolveAttack(3+6*i, 3)
					assert.Equal(t, AttackHit(kind), result)

					hitKind, ok := result.Kind()
					require.True(t, ok)
					assert.Equal(t, kind, hitKind)
				}
			})

			t.Run("Sinking a piece", func(t *testing.T) {
				store := newStore(t, strategy, 20)
				piece := entity.NewPiece(entity.KindZ, 9, 9, 180)
				require.Equal(t, PlaceOK, store.TryPlace(piece))

				piece.Footprint(func(x, y int) {
					assert.Equal(t, AttackHitZ, store.ResolveAttack(x, y))
				})

				assert.True(t, piece.Sunk())
			})
		})
	}
}

func TestStore_MarkShot(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			// Given: a board with a piece
			store := newStore(t, strategy, 20)
			require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindP, 4, 4, 0)))

			// When: shots are marked on empty and occupied cells, twice on the same cell
			store.MarkShot(0, 0, entity.ShotMiss)
			store.MarkShot(4, 4, entity.ShotMiss)
			store.MarkShot(4, 4, entity.ShotHitX)

			// Then: the latest state wins and pieces are not affected
			assert.Equal(t, entity.ShotMiss, store.ShotStatus(0, 0))
			assert.Equal(t, entity.ShotHitX, store.ShotStatus(4, 4))
			assert.Equal(t, entity.ShotNone, store.ShotStatus(1, 1))
			assert.Equal(t, PieceAlive, store.PieceStatus(4, 4))
			assert.Equal(t, PieceNone, store.PieceStatus(0, 0))
		})
	}
}

func TestStore_PlaceAfterShot(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			// Given: a shot recorded before any piece
			store := newStore(t, strategy, 20)
			store.MarkShot(6, 6, entity.ShotMiss)

			// When: a piece is placed over it
			require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindI, 6, 6, 0)))

			// Then: the cell holds both
			assert.Equal(t, PieceAlive, store.PieceStatus(6, 6))
			assert.Equal(t, entity.ShotMiss, store.ShotStatus(6, 6))
		})
	}
}

func TestStore_Clear(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			store := newStore(t, strategy, 20)
			require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindI, 6, 6, 0)))
			store.MarkShot(1, 1, entity.ShotMiss)

			store.Clear()

			assert.Equal(t, PieceNone, store.PieceStatus(6, 6))
			assert.Equal(t, entity.ShotNone, store.ShotStatus(1, 1))
			assert.Equal(t, 0, store.Pieces().Len())
			assert.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindI, 6, 6, 0)))
		})
	}
}

func TestStore_PieceKindAtWithoutPiece(t *testing.T) {
	for _, strategy := range strategies {
		t.Run(string(strategy), func(t *testing.T) {
			store := newStore(t, strategy, 20)

			assert.Panics(t, func() { store.PieceKindAt(3, 3) })
		})
	}
}

func TestAttackResult_Shot(t *testing.T) {
	tests := []struct {
		result   AttackResult
		shot     entity.ShotState
		recorded bool
	}{
		{result: AttackOutside, shot: entity.ShotNone, recorded: false},
		{result: AttackMiss, shot: entity.ShotMiss, recorded: true},
		{result: AttackHitI, shot: entity.ShotHitI, recorded: true},
		{result: AttackHitZ, shot: entity.ShotHitZ, recorded: true},
		{result: AttackAlreadyHit, shot: entity.ShotNone, recorded: false},
	}

	for _, test := range tests {
		t.Run(test.result.String(), func(t *testing.T) {
			shot, ok := test.result.Shot()

			assert.Equal(t, test.recorded, ok)
			assert.Equal(t, test.shot, shot)
		})
	}
}

func TestSparse_GrowsWithUse(t *testing.T) {
	// Given: an empty sparse board
	store := NewSparse(40)
	assert.Equal(t, 0, store.Cells())

	// When: one piece is placed and one shot is marked
	require.Equal(t, PlaceOK, store.TryPlace(entity.NewPiece(entity.KindX, 20, 20, 0)))
	store.MarkShot(0, 0, entity.ShotMiss)

	// Then: only those cells exist
	assert.Equal(t, 6, store.Cells())
}
