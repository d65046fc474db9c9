// Package shell is a line-oriented command interface over a game engine.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"fourd_chess/internal/game"
	"fourd_chess/internal/layout"
	"fourd_chess/internal/savegame"
	"fourd_chess/internal/shared"
)

const helpText = `Commands:
  board                          list every piece on the board
  moves <coord>                  legal moves of the piece on coord
  move <from> <to>               move or capture
  scratch <cat> <target>         scratch an enemy with a Cat
  layout <alien> <op> <args...>  transpose p0 p1 p2 p3 | swap_axis i j |
                                 move_axis from to | reshape_axis i j li lj
  undo                           take back the last action
  status                         turn and winner
  save <name|path>               write the game to disk
  load <name|path>               replace the game with a saved one
  new                            start over
  quit                           leave
Coordinates are written x,y,z,w.`

var errUsage = errors.New("usage")

// Options configures a Shell. The zero value plays the default game and
// saves under the user's data directory.
type Options struct {
	Config  game.Config
	SaveDir string
	Logger  *zap.Logger
}

type Shell struct {
	eng     *game.Engine
	cfg     game.Config
	saveDir string
	logger  *zap.Logger
}

func New(eng *game.Engine, opts Options) *Shell {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Config == (game.Config{}) {
		opts.Config = game.DefaultConfig()
	}
	return &Shell{eng: eng, cfg: opts.Config, saveDir: opts.SaveDir, logger: opts.Logger}
}

// Engine is the game currently bound to the shell; load and new replace it.
func (s *Shell) Engine() *game.Engine { return s.eng }

// Run reads commands from in until quit or end of input.
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to 4D Chess! Type 'help' for commands.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "[%s] > ", s.playerName(s.eng.Turn()))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if quit := s.Exec(scanner.Text(), out); quit {
			fmt.Fprintln(out, "Goodbye!")
			return nil
		}
	}
}

// Exec runs one command line and reports whether the shell should exit.
// Failures are printed, never returned.
func (s *Shell) Exec(line string, out io.Writer) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(out, helpText)
	case "board":
		s.printBoard(out)
	case "moves":
		err = s.moves(args, out)
	case "move":
		err = s.move(args, out)
	case "scratch":
		err = s.scratch(args, out)
	case "layout":
		err = s.layout(args, out)
	case "undo":
		if err = s.eng.Undo(); err == nil {
			fmt.Fprintf(out, "Undone, %s to move\n", s.playerName(s.eng.Turn()))
		}
	case "status", "winner":
		s.printStatus(out)
	case "save":
		err = s.save(args, out)
	case "load":
		err = s.load(args, out)
	case "new":
		err = s.newGame(out)
	default:
		fmt.Fprintln(out, "Unknown command. Type 'help' for assistance.")
	}
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
	}
	return false
}

func (s *Shell) moves(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: moves <coord>", errUsage)
	}
	c, err := shared.ParseCoord(args[0])
	if err != nil {
		return err
	}
	moves := s.eng.LegalMoves(c)
	if len(moves) == 0 {
		fmt.Fprintln(out, "No legal moves for that square.")
		return nil
	}
	for _, m := range moves {
		fmt.Fprintf(out, "%s: %v\n", strings.ToUpper(m.Kind.String()), m)
	}
	return nil
}

func (s *Shell) move(args []string, out io.Writer) error {
	from, to, err := coordPair(args, "move <from> <to>")
	if err != nil {
		return err
	}
	res, err := s.eng.Move(game.MoveRequest{Player: s.eng.Turn(), From: from, To: to})
	if err != nil {
		return err
	}
	s.printOutcome(res, out)
	return nil
}

func (s *Shell) scratch(args []string, out io.Writer) error {
	cat, target, err := coordPair(args, "scratch <cat> <target>")
	if err != nil {
		return err
	}
	res, err := s.eng.Scratch(game.ScratchRequest{Player: s.eng.Turn(), Cat: cat, Target: target})
	if err != nil {
		return err
	}
	s.printOutcome(res, out)
	return nil
}

func (s *Shell) layout(args []string, out io.Writer) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: layout <alien> <op> <args...>", errUsage)
	}
	alien, err := shared.ParseCoord(args[0])
	if err != nil {
		return err
	}
	op, err := ParseOp(args[1], args[2:])
	if err != nil {
		return err
	}
	res, err := s.eng.Layout(game.LayoutRequest{Player: s.eng.Turn(), Alien: alien, Op: op})
	if err != nil {
		return err
	}
	s.printOutcome(res, out)
	return nil
}

func (s *Shell) save(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: save <name|path>", errUsage)
	}
	path, err := savegame.Resolve(s.saveDir, args[0])
	if err != nil {
		return err
	}
	if err := savegame.Save(path, s.eng.Snapshot()); err != nil {
		return err
	}
	s.logger.Info("game saved", zap.String("game_id", s.eng.ID()), zap.String("path", path))
	fmt.Fprintf(out, "Game saved to %s\n", path)
	return nil
}

func (s *Shell) load(args []string, out io.Writer) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: load <name|path>", errUsage)
	}
	path, err := savegame.Resolve(s.saveDir, args[0])
	if err != nil {
		return err
	}
	snap, err := savegame.Load(path)
	if err != nil {
		return err
	}
	eng, err := game.Restore(snap, s.logger)
	if err != nil {
		return err
	}
	s.eng = eng
	fmt.Fprintf(out, "Loaded game from %s, %s to move\n", path, s.playerName(eng.Turn()))
	return nil
}

func (s *Shell) newGame(out io.Writer) error {
	eng, err := game.NewEngine(s.cfg, s.logger)
	if err != nil {
		return err
	}
	s.eng = eng
	fmt.Fprintf(out, "New %v game for %d players\n", s.cfg.Shape, s.cfg.Players)
	return nil
}

func (s *Shell) printBoard(out io.Writer) {
	fmt.Fprintf(out, "Board %v, %s to move\n", s.eng.Shape(), s.playerName(s.eng.Turn()))
	for _, pc := range s.eng.LivePieces() {
		line := fmt.Sprintf("  %-6s %s#%d %v", s.playerName(pc.Owner), pc.Variant.Symbol(), pc.ID, pc.Coord)
		if pc.Scratched {
			line += " scratched"
		}
		fmt.Fprintln(out, line)
	}
}

func (s *Shell) printStatus(out io.Writer) {
	if winner, ok := s.eng.Winner(); ok {
		fmt.Fprintf(out, "Winner: %s\n", s.playerName(winner))
		return
	}
	fmt.Fprintf(out, "Status: %v, %s to move\n", s.eng.Status(), s.playerName(s.eng.Turn()))
}

func (s *Shell) printOutcome(res game.Outcome, out io.Writer) {
	fmt.Fprintln(out, res.Note)
	if res.HasWinner {
		fmt.Fprintf(out, "Winner: %s\n", s.playerName(res.Winner))
	}
}

func (s *Shell) playerName(id int) string {
	players := s.eng.Players()
	if id >= 0 && id < len(players) {
		return players[id].Color
	}
	return "player " + strconv.Itoa(id)
}

func coordPair(args []string, usage string) (shared.Coord, shared.Coord, error) {
	if len(args) != 2 {
		return shared.Coord{}, shared.Coord{}, fmt.Errorf("%w: %s", errUsage, usage)
	}
	a, err := shared.ParseCoord(args[0])
	if err != nil {
		return shared.Coord{}, shared.Coord{}, err
	}
	b, err := shared.ParseCoord(args[1])
	if err != nil {
		return shared.Coord{}, shared.Coord{}, err
	}
	return a, b, nil
}

// ParseOp builds a layout op from its name and integer arguments. A
// transpose permutation may also be given as one comma-separated argument.
func ParseOp(name string, args []string) (layout.Op, error) {
	kind, ok := layout.ParseKind(name)
	if !ok {
		return layout.Op{}, fmt.Errorf("unknown layout operation %q", name)
	}
	if kind == layout.KindTranspose && len(args) == 1 {
		args = strings.Split(args[0], ",")
	}
	want := map[layout.Kind]int{
		layout.KindTranspose:   shared.Dims,
		layout.KindSwapAxis:    2,
		layout.KindMoveAxis:    2,
		layout.KindReshapeAxis: 4,
	}[kind]
	if len(args) != want {
		return layout.Op{}, fmt.Errorf("%w: %s takes %d integers, got %d", errUsage, kind, want, len(args))
	}
	n := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return layout.Op{}, fmt.Errorf("%s argument %q: %w", kind, a, err)
		}
		n[i] = v
	}
	switch kind {
	case layout.KindTranspose:
		return layout.Transpose(layout.Perm{n[0], n[1], n[2], n[3]}), nil
	case layout.KindSwapAxis:
		return layout.SwapAxis(n[0], n[1]), nil
	case layout.KindMoveAxis:
		return layout.MoveAxis(n[0], n[1]), nil
	default:
		return layout.ReshapeAxis(n[0], n[1], n[2], n[3]), nil
	}
}
