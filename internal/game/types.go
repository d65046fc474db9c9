package game

import (
	"fmt"

	"fourd_chess/internal/layout"
	"fourd_chess/internal/shared"
)

const (
	MinPlayers = 2
	MaxPlayers = 4
)

var playerColors = [MaxPlayers]string{"white", "black", "red", "blue"}

// Config is the construction input for a new game.
type Config struct {
	Shape   shared.Shape
	Players int
}

func DefaultConfig() Config {
	return Config{Shape: shared.DefaultShape, Players: MinPlayers}
}

func (c Config) validate() error {
	if !c.Shape.Valid() {
		return fmt.Errorf("%w: extents %v must all be positive", ErrOutOfBounds, c.Shape)
	}
	if c.Players < MinPlayers || c.Players > MaxPlayers {
		return fmt.Errorf("%w: player count %d outside %d-%d", ErrOutOfBounds, c.Players, MinPlayers, MaxPlayers)
	}
	return nil
}

// Player is a seat at the table. Pawns advance along Axis in Direction.
type Player struct {
	ID         int
	Color      string
	Axis       int
	Direction  int
	Eliminated bool
}

// Forward is the unit pawn step for this player.
func (p Player) Forward() shared.Coord { return shared.Unit(p.Axis, p.Direction) }

// newPlayer seats player id on its own primary axis; even seats start on the
// low side of the axis, odd seats on the high side.
func newPlayer(id int) Player {
	dir := 1
	if id%2 == 1 {
		dir = -1
	}
	return Player{ID: id, Color: playerColors[id], Axis: id % shared.Dims, Direction: dir}
}

type Status uint8

const (
	StatusSetup Status = iota
	StatusInProgress
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusSetup:
		return "setup"
	case StatusInProgress:
		return "in_progress"
	case StatusWon:
		return "won"
	default:
		return fmt.Sprintf("status(%d)", s)
	}
}

func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Status) UnmarshalText(b []byte) error {
	switch string(b) {
	case "setup":
		*s = StatusSetup
	case "in_progress":
		*s = StatusInProgress
	case "won":
		*s = StatusWon
	default:
		return fmt.Errorf("unknown status %q", b)
	}
	return nil
}

// Piece represents a single piece, alive or captured.
type Piece struct {
	ID        int
	Owner     int
	Variant   shared.Variant
	Coord     shared.Coord
	Scratched bool // set once by a Cat; forces pawn movement for good
	HasMoved  bool
	Alive     bool
}

// Effective is the variant whose movement the piece currently uses.
func (p *Piece) Effective() shared.Variant {
	if p.Scratched {
		return shared.Pawn
	}
	return p.Variant
}

// Abilities lists the piece's remaining powers; a scratched piece has none.
func (p *Piece) Abilities() shared.AbilityList {
	if p.Scratched {
		return nil
	}
	return shared.AbilitiesOf(p.Variant)
}

func (p *Piece) HasAbility(a shared.Ability) bool { return p.Abilities().Contains(a) }

func (p *Piece) String() string {
	return fmt.Sprintf("%s#%d@%v", p.Variant, p.ID, p.Coord)
}

type MoveKind uint8

const (
	MoveStep MoveKind = iota
	MoveCapture
	MoveScratch
	MoveLayout
)

func (k MoveKind) String() string {
	switch k {
	case MoveStep:
		return "move"
	case MoveCapture:
		return "capture"
	case MoveScratch:
		return "scratch"
	case MoveLayout:
		return "layout"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

func (k MoveKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *MoveKind) UnmarshalText(b []byte) error {
	for _, cand := range []MoveKind{MoveStep, MoveCapture, MoveScratch, MoveLayout} {
		if cand.String() == string(b) {
			*k = cand
			return nil
		}
	}
	return fmt.Errorf("unknown move kind %q", b)
}

// Move is one legal option for a piece: a destination, a scratch target, or
// a layout ability. Layout moves keep To equal to From.
type Move struct {
	PieceID int          `json:"pieceId"`
	Kind    MoveKind     `json:"kind"`
	From    shared.Coord `json:"from"`
	To      shared.Coord `json:"to"`
	Layout  *layout.Op   `json:"layout,omitempty"`
}

func (m Move) String() string {
	switch m.Kind {
	case MoveLayout:
		return fmt.Sprintf("layout %v", m.Layout)
	case MoveScratch:
		return fmt.Sprintf("scratch %v", m.To)
	default:
		return fmt.Sprintf("%s %v -> %v", m.Kind, m.From, m.To)
	}
}

// MoveRequest is passed in by an external layer to request a move.
type MoveRequest struct {
	Player int
	From   shared.Coord
	To     shared.Coord
}

// ScratchRequest asks the Cat at Cat to disable the enemy at Target.
type ScratchRequest struct {
	Player int
	Cat    shared.Coord
	Target shared.Coord
}

// LayoutRequest asks the Alien at Alien to apply Op to the board.
type LayoutRequest struct {
	Player int
	Alien  shared.Coord
	Op     layout.Op
}

// Outcome reports what an accepted action did.
type Outcome struct {
	Kind       MoveKind
	PieceID    int
	CapturedID int // zero when nothing was captured
	Note       string
	Status     Status
	HasWinner  bool
	Winner     int
}
