package game

import (
	"go.uber.org/zap"

	"fourd_chess/internal/layout"
	"fourd_chess/internal/shared"
)

// Record is one accepted action in the game log.
type Record struct {
	Ply        int          `json:"ply"`
	Player     int          `json:"player"`
	Kind       MoveKind     `json:"kind"`
	PieceID    int          `json:"pieceId"`
	From       shared.Coord `json:"from"`
	To         shared.Coord `json:"to"`
	Layout     *layout.Op   `json:"layout,omitempty"`
	CapturedID int          `json:"capturedId,omitempty"`
	Note       string       `json:"note"`
}

// undoEntry is the board before an action. The history is not copied; undo
// truncates the live log back to plies records.
type undoEntry struct {
	snap  Snapshot
	plies int
}

// pushUndo saves the state before an action is applied.
func (e *Engine) pushUndo() {
	e.undo = append(e.undo, undoEntry{snap: e.boardSnapshot(), plies: len(e.history)})
}

// Undo takes back the last accepted action. A decided game cannot be undone.
func (e *Engine) Undo() error {
	if e.status == StatusWon {
		return ErrGameOver
	}
	if len(e.undo) == 0 {
		return ErrNothingToUndo
	}
	idx := len(e.undo) - 1
	prev := e.undo[idx]
	stack := e.undo[:idx]

	restored, err := restore(prev.snap, e.logger)
	if err != nil {
		return err
	}
	history := e.history[:prev.plies:prev.plies]
	*e = *restored
	e.history = history
	e.undo = stack
	e.lastNote = "Undo"
	e.logger.Info("action undone",
		zap.String("game_id", e.id.String()),
		zap.Int("ply", len(e.history)),
	)
	return nil
}

// CanUndo reports whether Undo has anything to take back.
func (e *Engine) CanUndo() bool { return e.status != StatusWon && len(e.undo) > 0 }
