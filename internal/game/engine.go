// Package game implements the four-dimensional chess rules engine: board
// state, per-variant move generation, turn order and win detection.
package game

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fourd_chess/internal/shared"
)

// Engine owns one game. Calls must be serialized by the caller; separate
// games share nothing.
type Engine struct {
	id          uuid.UUID
	board       Board
	players     []Player
	turn        int
	status      Status
	hasWinner   bool
	winner      int
	history     []Record
	undo        []undoEntry
	nextPieceID int
	lastNote    string
	logger      *zap.Logger
}

var backRankOrder = []shared.Variant{
	shared.Rook, shared.Knight, shared.Bishop, shared.Queen, shared.King,
	shared.Bishop, shared.Knight, shared.Rook, shared.Cat, shared.Alien,
}

const pawnsPerPlayer = 8

// NewEngine creates a game for cfg and deals every player's pieces.
func NewEngine(cfg Config, logger *zap.Logger) (*Engine, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{
		id:          uuid.New(),
		board:       newBoard(cfg.Shape),
		status:      StatusSetup,
		nextPieceID: 1,
		logger:      logger,
	}
	for i := 0; i < cfg.Players; i++ {
		e.players = append(e.players, newPlayer(i))
	}
	if err := e.setup(); err != nil {
		return nil, err
	}
	e.status = StatusInProgress
	e.lastNote = "New game"
	e.logger.Info("game started",
		zap.String("game_id", e.id.String()),
		zap.Stringer("shape", cfg.Shape),
		zap.Int("players", cfg.Players),
		zap.Int("pieces", len(e.board.pieces)),
	)
	return e, nil
}

// setup fills each player's back hyperplane with the back rank and the next
// hyperplane along the primary axis with pawns. Cells already taken by an
// earlier player are skipped.
func (e *Engine) setup() error {
	shape := e.board.Shape()
	for _, p := range e.players {
		back := 0
		if p.Direction < 0 {
			back = shape[p.Axis] - 1
		}
		kingPlaced := false
		cells := planeCells(shape, p.Axis, back)
		for _, v := range backRankOrder {
			c, ok := nextFree(&e.board, &cells)
			if !ok {
				break
			}
			e.placePiece(p.ID, v, c)
			if v == shared.King {
				kingPlaced = true
			}
		}
		if !kingPlaced {
			return fmt.Errorf("%w: %v too small to seat the %s king", ErrOutOfBounds, shape, p.Color)
		}

		pawnPlane := back + p.Direction
		if pawnPlane < 0 || pawnPlane >= shape[p.Axis] {
			continue
		}
		cells = planeCells(shape, p.Axis, pawnPlane)
		for i := 0; i < pawnsPerPlayer; i++ {
			c, ok := nextFree(&e.board, &cells)
			if !ok {
				break
			}
			e.placePiece(p.ID, shared.Pawn, c)
		}
	}
	return nil
}

func (e *Engine) placePiece(owner int, v shared.Variant, c shared.Coord) *Piece {
	pc := &Piece{ID: e.nextPieceID, Owner: owner, Variant: v, Coord: c}
	e.nextPieceID++
	if err := e.board.place(pc); err != nil {
		panic(err) // callers only pass free in-bounds cells
	}
	return pc
}

func nextFree(b *Board, cells *[]shared.Coord) (shared.Coord, bool) {
	for len(*cells) > 0 {
		c := (*cells)[0]
		*cells = (*cells)[1:]
		if b.At(c) == nil {
			return c, true
		}
	}
	return shared.Coord{}, false
}

// planeCells lists the cells with c[axis] == value, visiting interior values
// of every other axis before its two edge values.
func planeCells(shape shared.Shape, axis, value int) []shared.Coord {
	var orders [shared.Dims][]int
	for a := 0; a < shared.Dims; a++ {
		if a == axis {
			orders[a] = []int{value}
			continue
		}
		orders[a] = interiorFirst(shape[a])
	}
	var out []shared.Coord
	var c shared.Coord
	var rec func(a int)
	rec = func(a int) {
		if a == shared.Dims {
			out = append(out, c)
			return
		}
		for _, v := range orders[a] {
			c[a] = v
			rec(a + 1)
		}
	}
	rec(0)
	return out
}

func interiorFirst(extent int) []int {
	vals := make([]int, extent)
	for i := range vals {
		vals[i] = i
	}
	edge := func(v int) bool { return v == 0 || v == extent-1 }
	sort.SliceStable(vals, func(i, j int) bool {
		return !edge(vals[i]) && edge(vals[j])
	})
	return vals
}

func (e *Engine) genContext() GenContext {
	return GenContext{Board: &e.board, Players: e.players}
}

// LegalMoves lists the options of the live piece on c in generation order,
// or nil when the cell is empty.
func (e *Engine) LegalMoves(c shared.Coord) []Move {
	pc := e.board.At(c)
	if pc == nil {
		return nil
	}
	return generateMoves(e.genContext(), pc)
}

// LegalMovesFor lists the options of every live piece the player owns.
func (e *Engine) LegalMovesFor(player int) []Move {
	var moves []Move
	for _, pc := range e.board.LivePieces() {
		if pc.Owner == player {
			moves = append(moves, generateMoves(e.genContext(), pc)...)
		}
	}
	return moves
}

func (e *Engine) ID() string          { return e.id.String() }
func (e *Engine) Shape() shared.Shape { return e.board.Shape() }
func (e *Engine) Status() Status      { return e.status }
func (e *Engine) LastNote() string    { return e.lastNote }

// Turn is the id of the player to move.
func (e *Engine) Turn() int { return e.players[e.turn].ID }

func (e *Engine) Winner() (int, bool) { return e.winner, e.hasWinner }

func (e *Engine) Players() []Player {
	return append([]Player(nil), e.players...)
}

func (e *Engine) History() []Record {
	return append([]Record(nil), e.history...)
}

// PieceAt returns a copy of the live piece on c.
func (e *Engine) PieceAt(c shared.Coord) (Piece, bool) {
	pc := e.board.At(c)
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

// LivePieces returns copies of the pieces on the board, ordered by id.
func (e *Engine) LivePieces() []Piece {
	live := e.board.LivePieces()
	out := make([]Piece, len(live))
	for i, pc := range live {
		out[i] = *pc
	}
	return out
}
