package game

import "fourd_chess/internal/shared"

var (
	kingOffsets      = shared.KingOffsets()
	rookDirections   = shared.RookDirections()
	bishopDirections = shared.BishopDirections()
	knightOffsets    = shared.KnightOffsets()
)

// landing classifies a single-target move onto to. ok is false when to is
// off the board or holds a friendly piece.
func landing(b *Board, pc *Piece, to shared.Coord) (MoveKind, bool) {
	if !b.InBounds(to) {
		return 0, false
	}
	occ := b.At(to)
	switch {
	case occ == nil:
		return MoveStep, true
	case occ.Owner != pc.Owner:
		return MoveCapture, true
	default:
		return 0, false
	}
}

// jumpMoves applies each offset once; intervening cells are irrelevant.
func jumpMoves(b *Board, pc *Piece, offsets []shared.Coord) []Move {
	moves := make([]Move, 0, len(offsets))
	for _, off := range offsets {
		to := shared.Add(pc.Coord, off)
		if kind, ok := landing(b, pc, to); ok {
			moves = append(moves, Move{PieceID: pc.ID, Kind: kind, From: pc.Coord, To: to})
		}
	}
	return moves
}

// slideMoves walks each direction until the edge, an empty run ending at the
// first enemy (included as a capture) or a friend (excluded).
func slideMoves(b *Board, pc *Piece, dirs []shared.Coord) []Move {
	var moves []Move
	for _, dir := range dirs {
		cur := pc.Coord
		for {
			cur = shared.Add(cur, dir)
			if !b.InBounds(cur) {
				break
			}
			occ := b.At(cur)
			if occ == nil {
				moves = append(moves, Move{PieceID: pc.ID, Kind: MoveStep, From: pc.Coord, To: cur})
				continue
			}
			if occ.Owner != pc.Owner {
				moves = append(moves, Move{PieceID: pc.ID, Kind: MoveCapture, From: pc.Coord, To: cur})
			}
			break
		}
	}
	return moves
}

func generateKingMoves(ctx GenContext, pc *Piece) []Move {
	return jumpMoves(ctx.Board, pc, kingOffsets)
}

func generateRookMoves(ctx GenContext, pc *Piece) []Move {
	return slideMoves(ctx.Board, pc, rookDirections)
}

func generateBishopMoves(ctx GenContext, pc *Piece) []Move {
	return slideMoves(ctx.Board, pc, bishopDirections)
}

func generateQueenMoves(ctx GenContext, pc *Piece) []Move {
	moves := slideMoves(ctx.Board, pc, rookDirections)
	return append(moves, slideMoves(ctx.Board, pc, bishopDirections)...)
}

func generateKnightMoves(ctx GenContext, pc *Piece) []Move {
	return jumpMoves(ctx.Board, pc, knightOffsets)
}

// generatePawnMoves follows the owner's primary axis. It also serves every
// scratched piece, whatever its variant.
func generatePawnMoves(ctx GenContext, pc *Piece) []Move {
	b := ctx.Board
	player := ctx.player(pc.Owner)
	fwd := player.Forward()

	var moves []Move
	one := shared.Add(pc.Coord, fwd)
	if b.InBounds(one) && b.At(one) == nil {
		moves = append(moves, Move{PieceID: pc.ID, Kind: MoveStep, From: pc.Coord, To: one})
		if !pc.HasMoved {
			two := shared.Add(one, fwd)
			if b.InBounds(two) && b.At(two) == nil {
				moves = append(moves, Move{PieceID: pc.ID, Kind: MoveStep, From: pc.Coord, To: two})
			}
		}
	}

	for axis := 0; axis < shared.Dims; axis++ {
		if axis == player.Axis {
			continue
		}
		for _, side := range [2]int{-1, 1} {
			to := shared.Add(one, shared.Unit(axis, side))
			if !b.InBounds(to) {
				continue
			}
			if occ := b.At(to); occ != nil && occ.Owner != pc.Owner {
				moves = append(moves, Move{PieceID: pc.ID, Kind: MoveCapture, From: pc.Coord, To: to})
			}
		}
	}
	return moves
}
