package entity

// ShotState - what the owner of a board recorded after shooting at a cell.
type ShotState byte

const (
	ShotNone ShotState = iota
	ShotMiss
	ShotHitI
	ShotHitP
	ShotHitT
	ShotHitX
	ShotHitZ
)

// ShotHit returns the shot state recorded for a hit on kind.
func ShotHit(kind PieceKind) ShotState {
	return ShotHitI + ShotState(kind.Index())
}

// Kind returns the piece kind of a hit shot; ok is false for ShotNone and ShotMiss.
func (s ShotState) Kind() (PieceKind, bool) {
	if s < ShotHitI || s > ShotHitZ {
		return 0, false
	}

	return Kinds[s-ShotHitI], true
}

// Cell - one board square. It refers to the piece occupying it without owning it.
type Cell struct {
	Piece PieceID
	Shot  ShotState
}

func (that *Cell) HasPiece() bool {
	return that.Piece != NoPiece
}
