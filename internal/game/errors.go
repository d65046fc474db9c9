package game

import (
	"errors"

	"fourd_chess/internal/layout"
)

var (
	ErrNotYourTurn    = errors.New("not your turn")
	ErrNoPieceAt      = errors.New("no piece at square")
	ErrNotOwner       = errors.New("piece belongs to another player")
	ErrIllegalMove    = errors.New("illegal move")
	ErrIllegalScratch = errors.New("illegal scratch")
	ErrIllegalLayout  = errors.New("illegal layout")
	ErrOutOfBounds    = errors.New("out of bounds")
	ErrGameOver       = errors.New("game is over")
	ErrNothingToUndo  = errors.New("nothing to undo")

	ErrInvalidSnapshot = errors.New("invalid snapshot")

	errIdentityLayout = errors.New("layout leaves the board unchanged")

	// ErrInvalidOperation is re-exported so callers need not import layout.
	ErrInvalidOperation = layout.ErrInvalidOperation
)
