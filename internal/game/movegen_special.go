package game

import (
	"fourd_chess/internal/layout"
	"fourd_chess/internal/shared"
)

// catJumpTargets lists the dimensional jumps from c: for every axis pair the
// pure exchange of the two components, then every signed transfer of
// distance from one axis of the pair to the other.
func catJumpTargets(c shared.Coord, shape shared.Shape) []shared.Coord {
	var out []shared.Coord
	shared.EachAxisPair(func(a, b int) {
		swapped := c
		swapped[a], swapped[b] = swapped[b], swapped[a]
		if swapped != c {
			out = append(out, swapped)
		}
		reach := shape[a] - 1
		for delta := -reach; delta <= reach; delta++ {
			if delta == 0 {
				continue
			}
			t := c
			t[a] += delta
			t[b] -= delta
			if shared.InBounds(t, shape) {
				out = append(out, t)
			}
		}
	})
	return out
}

// generateCatMoves is the king pattern plus dimensional jumps. Every enemy
// landing yields both a capture and a scratch option.
func generateCatMoves(ctx GenContext, pc *Piece) []Move {
	b := ctx.Board
	targets := make([]shared.Coord, 0, len(kingOffsets))
	for _, off := range kingOffsets {
		targets = append(targets, shared.Add(pc.Coord, off))
	}
	if pc.HasAbility(shared.AbilityDimensionalJump) {
		targets = append(targets, catJumpTargets(pc.Coord, b.Shape())...)
	}

	canScratch := pc.HasAbility(shared.AbilityScratch)
	seen := make(map[shared.Coord]bool, len(targets))
	var moves []Move
	for _, to := range targets {
		if seen[to] {
			continue
		}
		seen[to] = true
		kind, ok := landing(b, pc, to)
		if !ok {
			continue
		}
		moves = append(moves, Move{PieceID: pc.ID, Kind: kind, From: pc.Coord, To: to})
		if kind == MoveCapture && canScratch {
			moves = append(moves, Move{PieceID: pc.ID, Kind: MoveScratch, From: pc.Coord, To: to})
		}
	}
	return moves
}

// generateAlienMoves is the king pattern plus every layout op the board
// would accept with the Alien anchored in place.
func generateAlienMoves(ctx GenContext, pc *Piece) []Move {
	moves := jumpMoves(ctx.Board, pc, kingOffsets)
	if !pc.HasAbility(shared.AbilityLayout) {
		return moves
	}
	for _, op := range layout.Enumerate(ctx.Board.Shape()) {
		if _, err := planLayout(ctx.Board, pc, op); err != nil {
			continue
		}
		op := op
		moves = append(moves, Move{PieceID: pc.ID, Kind: MoveLayout, From: pc.Coord, To: pc.Coord, Layout: &op})
	}
	return moves
}

// planLayout binds op to the board and checks it against the anchored
// Alien. Identity ops are refused.
func planLayout(b *Board, anchor *Piece, op layout.Op) (layout.Plan, error) {
	plan, err := op.Plan(b.Shape())
	if err != nil {
		return layout.Plan{}, err
	}
	if plan.Identity() {
		return layout.Plan{}, errIdentityLayout
	}
	if _, _, err := b.checkLayout(anchor, plan); err != nil {
		return layout.Plan{}, err
	}
	return plan, nil
}
