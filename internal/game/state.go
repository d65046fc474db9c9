package game

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"fourd_chess/internal/shared"
)

// PieceState is a serializable representation of a Piece.
type PieceState struct {
	ID        int            `json:"id"`
	Owner     int            `json:"owner"`
	Variant   shared.Variant `json:"variant"`
	Coord     shared.Coord   `json:"coord"`
	Scratched bool           `json:"scratched,omitempty"`
	HasMoved  bool           `json:"hasMoved,omitempty"`
	Alive     bool           `json:"alive"`
}

// PlayerState is a serializable representation of a Player.
type PlayerState struct {
	ID         int    `json:"id"`
	Color      string `json:"color"`
	Axis       int    `json:"axis"`
	Direction  int    `json:"direction"`
	Eliminated bool   `json:"eliminated,omitempty"`
}

// Snapshot is the neutral export of a game, captured pieces included.
type Snapshot struct {
	GameID    string        `json:"gameId"`
	Shape     shared.Shape  `json:"shape"`
	Players   []PlayerState `json:"players"`
	Pieces    []PieceState  `json:"pieces"`
	Turn      int           `json:"turn"`
	Status    Status        `json:"status"`
	HasWinner bool          `json:"hasWinner"`
	Winner    int           `json:"winner"`
	History   []Record      `json:"history"`
	LastNote  string        `json:"lastNote"`
}

// Snapshot exports the full game state. The result shares nothing with the
// engine.
func (e *Engine) Snapshot() Snapshot {
	s := e.boardSnapshot()
	s.History = copyHistory(e.history)
	return s
}

// boardSnapshot is Snapshot without the history.
func (e *Engine) boardSnapshot() Snapshot {
	s := Snapshot{
		GameID:    e.id.String(),
		Shape:     e.board.Shape(),
		Players:   make([]PlayerState, 0, len(e.players)),
		Pieces:    make([]PieceState, 0, len(e.board.pieces)),
		Turn:      e.Turn(),
		Status:    e.status,
		HasWinner: e.hasWinner,
		Winner:    e.winner,
		LastNote:  e.lastNote,
	}
	for _, p := range e.players {
		s.Players = append(s.Players, PlayerState(p))
	}
	for _, pc := range e.board.pieces {
		s.Pieces = append(s.Pieces, PieceState(*pc))
	}
	return s
}

func copyHistory(src []Record) []Record {
	out := make([]Record, len(src))
	for i, rec := range src {
		if rec.Layout != nil {
			op := *rec.Layout
			rec.Layout = &op
		}
		out[i] = rec
	}
	return out
}

// Restore rebuilds an engine from a snapshot, rejecting anything that breaks
// the board or turn invariants with ErrInvalidSnapshot.
func Restore(s Snapshot, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	e, err := restore(s, logger)
	if err != nil {
		return nil, err
	}
	e.logger.Info("game restored",
		zap.String("game_id", e.id.String()),
		zap.Stringer("shape", e.board.Shape()),
		zap.Int("players", len(e.players)),
		zap.Int("ply", len(e.history)),
	)
	return e, nil
}

func restore(s Snapshot, logger *zap.Logger) (*Engine, error) {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidSnapshot, fmt.Sprintf(format, args...))
	}

	id := uuid.New()
	if s.GameID != "" {
		parsed, err := uuid.Parse(s.GameID)
		if err != nil {
			return nil, invalid("game id %q: %v", s.GameID, err)
		}
		id = parsed
	}
	if !s.Shape.Valid() {
		return nil, invalid("extents %v", s.Shape)
	}
	if len(s.Players) < MinPlayers || len(s.Players) > MaxPlayers {
		return nil, invalid("%d players", len(s.Players))
	}
	if s.Status != StatusInProgress && s.Status != StatusWon {
		return nil, invalid("status %v", s.Status)
	}

	e := &Engine{
		id:          id,
		board:       newBoard(s.Shape),
		status:      s.Status,
		hasWinner:   s.HasWinner,
		winner:      s.Winner,
		lastNote:    s.LastNote,
		nextPieceID: 1,
		logger:      logger,
	}
	for i, ps := range s.Players {
		if ps.ID != i {
			return nil, invalid("player %d listed at seat %d", ps.ID, i)
		}
		if ps.Axis < 0 || ps.Axis >= shared.Dims || (ps.Direction != 1 && ps.Direction != -1) {
			return nil, invalid("player %d has axis %d direction %d", ps.ID, ps.Axis, ps.Direction)
		}
		for _, prev := range e.players {
			if prev.Axis == ps.Axis {
				return nil, invalid("players %d and %d share axis %d", prev.ID, ps.ID, ps.Axis)
			}
		}
		e.players = append(e.players, Player(ps))
	}

	for _, ps := range s.Pieces {
		if !ps.Variant.Valid() {
			return nil, invalid("piece %d has variant %d", ps.ID, ps.Variant)
		}
		if ps.Owner < 0 || ps.Owner >= len(e.players) {
			return nil, invalid("piece %d owned by unknown player %d", ps.ID, ps.Owner)
		}
		if ps.ID <= 0 {
			return nil, invalid("piece id %d", ps.ID)
		}
		pc := Piece(ps)
		if pc.Alive {
			if err := e.board.place(&pc); err != nil {
				return nil, invalid("piece %d: %v", ps.ID, err)
			}
		} else {
			e.board.pieces = append(e.board.pieces, &pc)
		}
		if ps.ID >= e.nextPieceID {
			e.nextPieceID = ps.ID + 1
		}
	}
	if err := e.board.validate(); err != nil {
		return nil, invalid("%v", err)
	}

	if err := e.restoreTurn(s); err != nil {
		return nil, err
	}
	e.history = copyHistory(s.History)
	return e, nil
}

// restoreTurn checks the player flags and the winner against the kings on the
// board, then seats the player to move.
func (e *Engine) restoreTurn(s Snapshot) error {
	kings := e.liveKings()
	remaining, last := 0, -1
	for i, p := range e.players {
		if p.Eliminated != (kings[i] == 0) {
			return fmt.Errorf("%w: player %d eliminated=%t with %d kings", ErrInvalidSnapshot, p.ID, p.Eliminated, kings[i])
		}
		if !p.Eliminated {
			remaining++
			last = i
		}
	}
	won := remaining == 1
	if won != (s.Status == StatusWon) || won != s.HasWinner {
		return fmt.Errorf("%w: status %v with %d players standing", ErrInvalidSnapshot, s.Status, remaining)
	}
	if won && s.Winner != last {
		return fmt.Errorf("%w: winner %d but player %d is the last standing", ErrInvalidSnapshot, s.Winner, last)
	}
	if s.Turn < 0 || s.Turn >= len(e.players) {
		return fmt.Errorf("%w: turn %d", ErrInvalidSnapshot, s.Turn)
	}
	if e.players[s.Turn].Eliminated {
		return fmt.Errorf("%w: turn belongs to eliminated player %d", ErrInvalidSnapshot, s.Turn)
	}
	e.turn = s.Turn
	return nil
}
