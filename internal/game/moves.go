package game

import (
	"fmt"

	"go.uber.org/zap"

	"fourd_chess/internal/shared"
)

// Move relocates a piece, capturing any enemy on the destination.
func (e *Engine) Move(req MoveRequest) (Outcome, error) {
	pc, err := e.actingPiece(req.Player, req.From)
	if err != nil {
		return e.reject("move", req.Player, err)
	}
	move, ok := findMove(generateMoves(e.genContext(), pc), func(m Move) bool {
		return m.To == req.To && (m.Kind == MoveStep || m.Kind == MoveCapture)
	})
	if !ok {
		return e.reject("move", req.Player, fmt.Errorf("%w: %v cannot reach %v", ErrIllegalMove, pc, req.To))
	}

	e.pushUndo()
	rec := Record{Player: req.Player, Kind: move.Kind, PieceID: pc.ID, From: req.From, To: req.To}
	if target := e.board.At(req.To); target != nil {
		e.board.capture(target)
		rec.CapturedID = target.ID
		rec.Note = fmt.Sprintf("%s moved to %v capturing %s", pc.Variant, req.To, target.Variant)
	} else {
		rec.Note = fmt.Sprintf("%s moved to %v", pc.Variant, req.To)
	}
	e.board.relocate(pc, req.To)
	return e.commit(rec), nil
}

// Scratch lets a Cat disable an enemy in reach without moving. The target
// keeps its square but moves like a pawn from now on.
func (e *Engine) Scratch(req ScratchRequest) (Outcome, error) {
	pc, err := e.actingPiece(req.Player, req.Cat)
	if err != nil {
		return e.reject("scratch", req.Player, err)
	}
	if !pc.HasAbility(shared.AbilityScratch) {
		return e.reject("scratch", req.Player, fmt.Errorf("%w: %v cannot scratch", ErrIllegalScratch, pc))
	}
	_, ok := findMove(generateMoves(e.genContext(), pc), func(m Move) bool {
		return m.Kind == MoveScratch && m.To == req.Target
	})
	if !ok {
		return e.reject("scratch", req.Player, fmt.Errorf("%w: %v cannot reach an enemy at %v", ErrIllegalScratch, pc, req.Target))
	}

	e.pushUndo()
	target := e.board.At(req.Target)
	target.Scratched = true
	return e.commit(Record{
		Player:  req.Player,
		Kind:    MoveScratch,
		PieceID: pc.ID,
		From:    req.Cat,
		To:      req.Target,
		Note:    fmt.Sprintf("%s scratched %s at %v", pc.Variant, target.Variant, req.Target),
	}), nil
}

// Layout lets an Alien remap every other piece through a layout op while it
// stays on its own cell. Ops that leave the board unchanged, such as a swap of
// an axis with itself, are refused with ErrIllegalLayout.
func (e *Engine) Layout(req LayoutRequest) (Outcome, error) {
	pc, err := e.actingPiece(req.Player, req.Alien)
	if err != nil {
		return e.reject("layout", req.Player, err)
	}
	if !pc.HasAbility(shared.AbilityLayout) {
		return e.reject("layout", req.Player, fmt.Errorf("%w: %v cannot change the layout", ErrIllegalLayout, pc))
	}
	plan, err := planLayout(&e.board, pc, req.Op)
	if err != nil {
		return e.reject("layout", req.Player, fmt.Errorf("%w: %v: %w", ErrIllegalLayout, req.Op, err))
	}

	e.pushUndo()
	if err := e.board.applyLayout(pc, plan); err != nil {
		e.undo = e.undo[:len(e.undo)-1]
		return e.reject("layout", req.Player, fmt.Errorf("%w: %w", ErrIllegalLayout, err))
	}
	op := req.Op
	return e.commit(Record{
		Player:  req.Player,
		Kind:    MoveLayout,
		PieceID: pc.ID,
		From:    req.Alien,
		To:      req.Alien,
		Layout:  &op,
		Note:    fmt.Sprintf("%s executed %v, board is now %v", pc.Variant, req.Op, plan.To),
	}), nil
}

// actingPiece runs the checks shared by every action, in order: game over,
// turn, occupancy, ownership.
func (e *Engine) actingPiece(player int, at shared.Coord) (*Piece, error) {
	if e.status == StatusWon {
		return nil, ErrGameOver
	}
	if player != e.Turn() {
		return nil, fmt.Errorf("%w: player %d to move", ErrNotYourTurn, e.Turn())
	}
	pc := e.board.At(at)
	if pc == nil {
		return nil, fmt.Errorf("%w: %v", ErrNoPieceAt, at)
	}
	if pc.Owner != player {
		return nil, fmt.Errorf("%w: %v", ErrNotOwner, pc)
	}
	return pc, nil
}

func (e *Engine) reject(action string, player int, err error) (Outcome, error) {
	e.logger.Debug("action rejected",
		zap.String("game_id", e.id.String()),
		zap.String("action", action),
		zap.Int("player", player),
		zap.Error(err),
	)
	return Outcome{}, err
}

// commit records an accepted action, re-evaluates the winner and hands the
// turn on.
func (e *Engine) commit(rec Record) Outcome {
	rec.Ply = len(e.history) + 1
	e.history = append(e.history, rec)
	e.lastNote = rec.Note

	e.updateGameStatus()
	if e.status != StatusWon {
		e.advanceTurn()
	}

	e.logger.Info("action accepted",
		zap.String("game_id", e.id.String()),
		zap.Int("ply", rec.Ply),
		zap.Int("player", rec.Player),
		zap.Stringer("kind", rec.Kind),
		zap.String("note", rec.Note),
	)
	return Outcome{
		Kind:       rec.Kind,
		PieceID:    rec.PieceID,
		CapturedID: rec.CapturedID,
		Note:       e.lastNote,
		Status:     e.status,
		HasWinner:  e.hasWinner,
		Winner:     e.winner,
	}
}

func findMove(moves []Move, match func(Move) bool) (Move, bool) {
	for _, m := range moves {
		if match(m) {
			return m, true
		}
	}
	return Move{}, false
}
