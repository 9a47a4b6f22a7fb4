package apperror

import "errors"

var (
	ErrInvalidPieceKind   = errors.New("invalid piece kind")
	ErrInvalidRotation    = errors.New("rotation must be a multiple of 90 degrees")
	ErrInvalidBoardSize   = errors.New("board size is out of range")
	ErrInvalidStrategy    = errors.New("unknown board strategy")
	ErrEmptyFleet         = errors.New("fleet has no pieces")
	ErrPlacementExhausted = errors.New("no free position found for piece")
	ErrPlacementRejected  = errors.New("piece placement rejected")
	ErrMatchFinished      = errors.New("match is already finished")

	ErrInvalidFirstAttacker = errors.New("first attacker must be player 0 or 1")
)
