package shell

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fourd_chess/internal/game"
	"fourd_chess/internal/layout"
	"fourd_chess/internal/shared"
)

func newTestShell(t *testing.T) *Shell {
	t.Helper()
	eng, err := game.NewEngine(game.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return New(eng, Options{SaveDir: t.TempDir()})
}

func exec(t *testing.T, sh *Shell, line string) string {
	t.Helper()
	var out bytes.Buffer
	if sh.Exec(line, &out) {
		t.Fatalf("%q asked the shell to quit", line)
	}
	return out.String()
}

func token(c shared.Coord) string {
	return fmt.Sprintf("%d,%d,%d,%d", c[0], c[1], c[2], c[3])
}

func firstStep(t *testing.T, eng *game.Engine) game.Move {
	t.Helper()
	for _, m := range eng.LegalMovesFor(eng.Turn()) {
		if m.Kind == game.MoveStep {
			return m
		}
	}
	t.Fatalf("no step available")
	return game.Move{}
}

func TestExecBasicCommands(t *testing.T) {
	sh := newTestShell(t)

	tests := []struct {
		line string
		want string
	}{
		{line: "help", want: "Commands:"},
		{line: "board", want: "Board 4x4x4x4, white to move"},
		{line: "status", want: "Status: in_progress, white to move"},
		{line: "moves 2,0,0,0", want: "No legal moves for that square."},
		{line: "moves", want: "Error: usage"},
		{line: "moves 1,2", want: "Error: coordinate"},
		{line: "dance", want: "Unknown command"},
		{line: "undo", want: "Error: nothing to undo"},
	}
	for _, tt := range tests {
		if got := exec(t, sh, tt.line); !strings.Contains(got, tt.want) {
			t.Fatalf("%q printed %q, want it to contain %q", tt.line, got, tt.want)
		}
	}
	if got := exec(t, sh, ""); got != "" {
		t.Fatalf("blank line printed %q", got)
	}
}

func TestExecMoveAndUndo(t *testing.T) {
	sh := newTestShell(t)
	step := firstStep(t, sh.Engine())

	listing := exec(t, sh, "moves "+token(step.From))
	if !strings.Contains(listing, "MOVE: move "+step.From.String()) {
		t.Fatalf("moves listing missing the step: %q", listing)
	}

	got := exec(t, sh, fmt.Sprintf("move %s %s", token(step.From), token(step.To)))
	if !strings.Contains(got, "moved to "+step.To.String()) {
		t.Fatalf("unexpected move output %q", got)
	}
	if sh.Engine().Turn() != 1 {
		t.Fatalf("turn did not pass")
	}
	if got := exec(t, sh, "status"); !strings.Contains(got, "black to move") {
		t.Fatalf("unexpected status %q", got)
	}

	// The shell always acts for the player to move.
	if got := exec(t, sh, fmt.Sprintf("move %s %s", token(step.To), token(step.From))); !strings.Contains(got, "Error: piece belongs to another player") {
		t.Fatalf("expected an ownership error, got %q", got)
	}

	if got := exec(t, sh, "undo"); !strings.Contains(got, "Undone, white to move") {
		t.Fatalf("unexpected undo output %q", got)
	}
	if _, ok := sh.Engine().PieceAt(step.From); !ok {
		t.Fatalf("undo did not put the piece back")
	}
}

func TestExecLayoutAndScratchErrors(t *testing.T) {
	sh := newTestShell(t)

	if got := exec(t, sh, "layout 0,0,0,0 spin 1 2"); !strings.Contains(got, "unknown layout operation") {
		t.Fatalf("unexpected output %q", got)
	}
	if got := exec(t, sh, "layout 2,0,0,0 swap_axis 0 1"); !strings.Contains(got, "Error: no piece at square") {
		t.Fatalf("unexpected output %q", got)
	}
	if got := exec(t, sh, "scratch 2,0,0,0"); !strings.Contains(got, "Error: usage") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestExecSaveLoadAndNew(t *testing.T) {
	sh := newTestShell(t)
	id := sh.Engine().ID()

	got := exec(t, sh, "save opening")
	if !strings.Contains(got, "Game saved to") {
		t.Fatalf("unexpected save output %q", got)
	}
	if _, err := os.Stat(filepath.Join(sh.saveDir, "opening.json")); err != nil {
		t.Fatalf("save file missing: %v", err)
	}

	step := firstStep(t, sh.Engine())
	exec(t, sh, fmt.Sprintf("move %s %s", token(step.From), token(step.To)))

	if got := exec(t, sh, "load opening"); !strings.Contains(got, "white to move") {
		t.Fatalf("unexpected load output %q", got)
	}
	if sh.Engine().ID() != id || len(sh.Engine().History()) != 0 {
		t.Fatalf("load did not bring back the saved game")
	}

	if got := exec(t, sh, "load missing"); !strings.Contains(got, "Error:") {
		t.Fatalf("expected an error loading a missing save, got %q", got)
	}

	if got := exec(t, sh, "new"); !strings.Contains(got, "New 4x4x4x4 game for 2 players") {
		t.Fatalf("unexpected new output %q", got)
	}
	if sh.Engine().ID() == id {
		t.Fatalf("new kept the old game")
	}
}

func TestRunStopsOnQuit(t *testing.T) {
	sh := newTestShell(t)
	var out bytes.Buffer
	if err := sh.Run(strings.NewReader("status\nquit\nboard\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "Status: in_progress") || !strings.Contains(got, "Goodbye!") {
		t.Fatalf("unexpected transcript %q", got)
	}
	if strings.Contains(got, "Board ") {
		t.Fatalf("commands after quit were run: %q", got)
	}
}

func TestRunEndsAtEOF(t *testing.T) {
	sh := newTestShell(t)
	var out bytes.Buffer
	if err := sh.Run(strings.NewReader("board\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Board 4x4x4x4") {
		t.Fatalf("unexpected transcript %q", out.String())
	}
}

func TestParseOp(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want layout.Op
	}{
		{name: "transpose", args: []string{"1", "0", "2", "3"}, want: layout.Transpose(layout.Perm{1, 0, 2, 3})},
		{name: "transpose", args: []string{"3,2,1,0"}, want: layout.Transpose(layout.Perm{3, 2, 1, 0})},
		{name: "swap_axis", args: []string{"0", "2"}, want: layout.SwapAxis(0, 2)},
		{name: "move_axis", args: []string{"3", "0"}, want: layout.MoveAxis(3, 0)},
		{name: "reshape_axis", args: []string{"0", "1", "2", "8"}, want: layout.ReshapeAxis(0, 1, 2, 8)},
	}
	for _, tt := range tests {
		got, err := ParseOp(tt.name, tt.args)
		if err != nil {
			t.Fatalf("%s %v: %v", tt.name, tt.args, err)
		}
		if got != tt.want {
			t.Fatalf("%s %v = %v, want %v", tt.name, tt.args, got, tt.want)
		}
	}

	bad := []struct {
		name string
		args []string
	}{
		{name: "rotate", args: []string{"1"}},
		{name: "swap_axis", args: []string{"0"}},
		{name: "reshape_axis", args: []string{"0", "1", "x", "8"}},
	}
	for _, tt := range bad {
		if _, err := ParseOp(tt.name, tt.args); err == nil {
			t.Fatalf("%s %v: expected an error", tt.name, tt.args)
		}
	}
}
