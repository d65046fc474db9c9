package game

import (
	"fmt"

	"fourd_chess/internal/layout"
	"fourd_chess/internal/shared"
)

// Board is the authoritative occupancy map plus every piece ever placed.
type Board struct {
	shape   shared.Shape
	pieceAt map[shared.Coord]*Piece
	pieces  []*Piece // ordered by ID, captured pieces included
}

func newBoard(shape shared.Shape) Board {
	return Board{
		shape:   shape,
		pieceAt: make(map[shared.Coord]*Piece),
	}
}

func (b *Board) Shape() shared.Shape { return b.shape }

// At returns the live piece on c, or nil.
func (b *Board) At(c shared.Coord) *Piece { return b.pieceAt[c] }

// Pieces returns every piece, captured ones included.
func (b *Board) Pieces() []*Piece { return b.pieces }

func (b *Board) LivePieces() []*Piece {
	out := make([]*Piece, 0, len(b.pieceAt))
	for _, pc := range b.pieces {
		if pc.Alive {
			out = append(out, pc)
		}
	}
	return out
}

func (b *Board) InBounds(c shared.Coord) bool { return shared.InBounds(c, b.shape) }

// piece finds a piece by id, alive or not.
func (b *Board) piece(id int) *Piece {
	for _, pc := range b.pieces {
		if pc.ID == id {
			return pc
		}
	}
	return nil
}

func (b *Board) place(pc *Piece) error {
	if !b.InBounds(pc.Coord) {
		return fmt.Errorf("%w: %v outside %v", ErrOutOfBounds, pc.Coord, b.shape)
	}
	if occ := b.pieceAt[pc.Coord]; occ != nil {
		return fmt.Errorf("%v already holds %v", pc.Coord, occ)
	}
	pc.Alive = true
	b.pieceAt[pc.Coord] = pc
	b.pieces = append(b.pieces, pc)
	return nil
}

// capture takes pc off the board; the record is kept.
func (b *Board) capture(pc *Piece) {
	if b.pieceAt[pc.Coord] == pc {
		delete(b.pieceAt, pc.Coord)
	}
	pc.Alive = false
}

func (b *Board) relocate(pc *Piece, to shared.Coord) {
	delete(b.pieceAt, pc.Coord)
	pc.Coord = to
	pc.HasMoved = true
	b.pieceAt[to] = pc
}

// checkLayout validates plan against the live pieces, keeping anchor fixed.
// It returns the remapped coordinates in LivePieces order.
func (b *Board) checkLayout(anchor *Piece, plan layout.Plan) ([]*Piece, []shared.Coord, error) {
	if !shared.InBounds(anchor.Coord, plan.To) {
		return nil, nil, fmt.Errorf("%w: anchor %v falls outside %v", layout.ErrCollision, anchor.Coord, plan.To)
	}
	movers := make([]*Piece, 0, len(b.pieceAt))
	coords := make([]shared.Coord, 0, len(b.pieceAt))
	for _, pc := range b.LivePieces() {
		if pc == anchor {
			continue
		}
		movers = append(movers, pc)
		coords = append(coords, pc.Coord)
	}
	mapped, err := plan.Remap(coords)
	if err != nil {
		return nil, nil, err
	}
	for i, c := range mapped {
		if c == anchor.Coord {
			return nil, nil, fmt.Errorf("%w: %v would land on the anchor at %v", layout.ErrCollision, movers[i], c)
		}
	}
	return movers, mapped, nil
}

// applyLayout remaps every live piece except anchor through plan and adopts
// the new shape. Nothing is touched unless the whole remap is valid.
func (b *Board) applyLayout(anchor *Piece, plan layout.Plan) error {
	movers, mapped, err := b.checkLayout(anchor, plan)
	if err != nil {
		return err
	}
	b.pieceAt = make(map[shared.Coord]*Piece, len(b.pieceAt))
	b.pieceAt[anchor.Coord] = anchor
	for i, pc := range movers {
		pc.Coord = mapped[i]
		b.pieceAt[pc.Coord] = pc
	}
	b.shape = plan.To
	return nil
}

// validate checks the occupancy invariant: every live piece is in bounds and
// keyed exactly once at its own coordinate, and nothing else is keyed.
func (b *Board) validate() error {
	if !b.shape.Valid() {
		return fmt.Errorf("%w: extents %v", ErrOutOfBounds, b.shape)
	}
	live := 0
	ids := make(map[int]bool, len(b.pieces))
	for _, pc := range b.pieces {
		if ids[pc.ID] {
			return fmt.Errorf("duplicate piece id %d", pc.ID)
		}
		ids[pc.ID] = true
		if !pc.Alive {
			continue
		}
		live++
		if !b.InBounds(pc.Coord) {
			return fmt.Errorf("%w: %v outside %v", ErrOutOfBounds, pc, b.shape)
		}
		if b.pieceAt[pc.Coord] != pc {
			return fmt.Errorf("%v not keyed at its own coordinate", pc)
		}
	}
	if live != len(b.pieceAt) {
		return fmt.Errorf("occupancy holds %d cells for %d live pieces", len(b.pieceAt), live)
	}
	return nil
}
