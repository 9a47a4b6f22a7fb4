package game

import (
	"github.com/rocketscienceinc/battleship-board/internal/board"
	"github.com/rocketscienceinc/battleship-board/internal/entity"
)

// RenderPieces draws the owner's view: '.' empty, the kind letter for an
// intact cell and 'X' for a hit one.
func RenderPieces(store board.Store) []string {
	return render(store, func(x, y int) byte {
		switch store.PieceStatus(x, y) {
		case board.PieceAlive:
			return byte(store.PieceKindAt(x, y))
		case board.PieceDestroyed:
			return 'X'
		default:
			return '.'
		}
	})
}

// RenderShots draws the shots a player fired: '.' untried, 'M' miss and the
// kind letter of the piece that was hit.
func RenderShots(store board.Store) []string {
	return render(store, func(x, y int) byte {
		shot := store.ShotStatus(x, y)
		if kind, ok := shot.Kind(); ok {
			return byte(kind)
		}
		if shot == entity.ShotMiss {
			return 'M'
		}

		return '.'
	})
}

func render(store board.Store, glyph func(x, y int) byte) []string {
	size := store.Size()
	rows := make([]string, size)

	line := make([]byte, size)
	for x := range size {
		for y := range size {
			line[y] = glyph(x, y)
		}
		rows[x] = string(line)
	}

	return rows
}
