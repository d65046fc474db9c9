package layout

import (
	"errors"
	"testing"

	"fourd_chess/internal/shared"
)

func allCells(shape shared.Shape) []shared.Coord {
	cells := make([]shared.Coord, 0, shape.Cells())
	var c shared.Coord
	var rec func(axis int)
	rec = func(axis int) {
		if axis == shared.Dims {
			cells = append(cells, c)
			return
		}
		for v := 0; v < shape[axis]; v++ {
			c[axis] = v
			rec(axis + 1)
		}
	}
	rec(0)
	return cells
}

func mustPlan(t *testing.T, op Op, shape shared.Shape) Plan {
	t.Helper()
	p, err := op.Plan(shape)
	if err != nil {
		t.Fatalf("plan %v on %v: %v", op, shape, err)
	}
	return p
}

func TestTransposeTwiceRestoresCoordinates(t *testing.T) {
	shape := shared.Shape{4, 3, 2, 2}
	op := Transpose(Perm{1, 0, 2, 3})
	first := mustPlan(t, op, shape)
	if want := (shared.Shape{3, 4, 2, 2}); first.To != want {
		t.Fatalf("transposed shape = %v, want %v", first.To, want)
	}
	second := mustPlan(t, op, first.To)
	if second.To != shape {
		t.Fatalf("second transpose shape = %v, want %v", second.To, shape)
	}
	for _, c := range allCells(shape) {
		if got := second.Map(first.Map(c)); got != c {
			t.Fatalf("transpose twice moved %v to %v", c, got)
		}
	}
}

func TestEveryOpIsACellBijection(t *testing.T) {
	shape := shared.Shape{2, 3, 4, 1}
	cells := allCells(shape)
	for _, op := range Enumerate(shape) {
		p := mustPlan(t, op, shape)
		if p.To.Cells() != shape.Cells() {
			t.Fatalf("%v changed cell count %d -> %d", op, shape.Cells(), p.To.Cells())
		}
		if p.Identity() {
			t.Fatalf("Enumerate produced identity op %v", op)
		}
		mapped, err := p.Remap(cells)
		if err != nil {
			t.Fatalf("%v: %v", op, err)
		}
		for _, m := range mapped {
			if !shared.InBounds(m, p.To) {
				t.Fatalf("%v mapped a cell to %v outside %v", op, m, p.To)
			}
		}
	}
}

func TestEnumerateCounts(t *testing.T) {
	ops := Enumerate(shared.DefaultShape)
	counts := make(map[Kind]int)
	for _, op := range ops {
		counts[op.Kind]++
	}
	// 16 = 1x16, 2x8, 4x4, 8x2, 16x1; the 4x4 pair is the identity.
	want := map[Kind]int{KindTranspose: 23, KindSwapAxis: 6, KindMoveAxis: 12, KindReshapeAxis: 24}
	for kind, n := range want {
		if counts[kind] != n {
			t.Errorf("%s: %d ops, want %d", kind, counts[kind], n)
		}
	}
}

func TestSwapAxisExchangesComponents(t *testing.T) {
	p := mustPlan(t, SwapAxis(1, 3), shared.Shape{2, 3, 4, 5})
	if want := (shared.Shape{2, 5, 4, 3}); p.To != want {
		t.Fatalf("shape = %v, want %v", p.To, want)
	}
	if got, want := p.Map(shared.Coord{1, 2, 3, 4}), (shared.Coord{1, 4, 3, 2}); got != want {
		t.Fatalf("Map = %v, want %v", got, want)
	}
}

func TestMoveAxisShiftsInterveningAxes(t *testing.T) {
	tests := []struct {
		from, to  int
		wantShape shared.Shape
		wantCoord shared.Coord
	}{
		{0, 3, shared.Shape{3, 4, 5, 2}, shared.Coord{2, 3, 4, 1}},
		{3, 0, shared.Shape{5, 2, 3, 4}, shared.Coord{4, 1, 2, 3}},
		{1, 2, shared.Shape{2, 4, 3, 5}, shared.Coord{1, 3, 2, 4}},
	}
	for _, tt := range tests {
		p := mustPlan(t, MoveAxis(tt.from, tt.to), shared.Shape{2, 3, 4, 5})
		if p.To != tt.wantShape {
			t.Errorf("move_axis(%d,%d) shape = %v, want %v", tt.from, tt.to, p.To, tt.wantShape)
		}
		if got := p.Map(shared.Coord{1, 2, 3, 4}); got != tt.wantCoord {
			t.Errorf("move_axis(%d,%d) Map = %v, want %v", tt.from, tt.to, got, tt.wantCoord)
		}
	}
}

func TestReshapeIsRowMajorOverThePair(t *testing.T) {
	p := mustPlan(t, ReshapeAxis(0, 1, 2, 8), shared.DefaultShape)
	if want := (shared.Shape{2, 8, 4, 4}); p.To != want {
		t.Fatalf("shape = %v, want %v", p.To, want)
	}
	tests := []struct {
		in, want shared.Coord
	}{
		{shared.Coord{0, 0, 1, 2}, shared.Coord{0, 0, 1, 2}},
		{shared.Coord{1, 0, 0, 0}, shared.Coord{0, 4, 0, 0}},
		{shared.Coord{2, 1, 0, 3}, shared.Coord{1, 1, 0, 3}},
		{shared.Coord{3, 3, 3, 3}, shared.Coord{1, 7, 3, 3}},
	}
	for _, tt := range tests {
		if got := p.Map(tt.in); got != tt.want {
			t.Errorf("Map(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestInvalidOperations(t *testing.T) {
	tests := []struct {
		name string
		op   Op
	}{
		{"repeated axis", Transpose(Perm{0, 0, 2, 3})},
		{"axis out of range", Transpose(Perm{0, 1, 2, 4})},
		{"swap out of range", SwapAxis(0, 4)},
		{"move out of range", MoveAxis(-1, 2)},
		{"reshape product mismatch", ReshapeAxis(0, 1, 3, 5)},
		{"reshape same axis", ReshapeAxis(2, 2, 4, 4)},
		{"reshape zero length", ReshapeAxis(0, 1, 0, 16)},
	}
	for _, tt := range tests {
		if _, err := tt.op.Plan(shared.DefaultShape); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("%s: expected ErrInvalidOperation, got %v", tt.name, err)
		}
	}
}

func TestRemapReportsCollision(t *testing.T) {
	p := mustPlan(t, SwapAxis(0, 1), shared.DefaultShape)
	// A bijection only collides when fed the same cell twice.
	_, err := p.Remap([]shared.Coord{{1, 2, 0, 0}, {1, 2, 0, 0}})
	if !errors.Is(err, ErrCollision) {
		t.Fatalf("expected ErrCollision, got %v", err)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindTranspose, KindSwapAxis, KindMoveAxis, KindReshapeAxis} {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("roll"); ok {
		t.Fatalf("roll is not a layout kind")
	}
}
