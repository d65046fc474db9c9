package layout

import (
	"fmt"

	"fourd_chess/internal/shared"
)

// Plan is an Op bound to a concrete board shape.
type Plan struct {
	Op   Op
	From shared.Shape
	To   shared.Shape

	perm    Perm
	reshape bool
}

// Plan validates op against shape and returns the coordinate mapping.
func (op Op) Plan(shape shared.Shape) (Plan, error) {
	if !shape.Valid() {
		return Plan{}, fmt.Errorf("%w: shape %v has an empty axis", ErrInvalidOperation, shape)
	}
	if op.Kind == KindReshapeAxis {
		return reshapePlan(op, shape)
	}
	perm, err := op.permutation()
	if err != nil {
		return Plan{}, err
	}
	p := Plan{Op: op, From: shape, perm: perm}
	for k, axis := range perm {
		p.To[k] = shape[axis]
	}
	return p, nil
}

func reshapePlan(op Op, shape shared.Shape) (Plan, error) {
	if !axisInRange(op.I) || !axisInRange(op.J) || op.I == op.J {
		return Plan{}, fmt.Errorf("%w: reshape needs two distinct axes, got %d,%d", ErrInvalidOperation, op.I, op.J)
	}
	if op.LenI < 1 || op.LenJ < 1 {
		return Plan{}, fmt.Errorf("%w: reshape lengths %d,%d must be positive", ErrInvalidOperation, op.LenI, op.LenJ)
	}
	if got, want := op.LenI*op.LenJ, shape[op.I]*shape[op.J]; got != want {
		return Plan{}, fmt.Errorf("%w: reshape %dx%d holds %d cells, axes %d,%d hold %d",
			ErrInvalidOperation, op.LenI, op.LenJ, got, op.I, op.J, want)
	}
	p := Plan{Op: op, From: shape, To: shape, reshape: true}
	p.To[op.I] = op.LenI
	p.To[op.J] = op.LenJ
	return p, nil
}

// Map sends a coordinate of the From shape to its cell in the To shape.
//
// Reshape flattens the (I, J) pair row-major with I as the major axis,
// lin = c[I]*From[J] + c[J], and re-expands lin the same way under To.
func (p Plan) Map(c shared.Coord) shared.Coord {
	if p.reshape {
		i, j := p.Op.I, p.Op.J
		lin := c[i]*p.From[j] + c[j]
		out := c
		out[i] = lin / p.To[j]
		out[j] = lin % p.To[j]
		return out
	}
	var out shared.Coord
	for k, axis := range p.perm {
		out[k] = c[axis]
	}
	return out
}

// Identity reports whether the plan leaves every cell where it is.
func (p Plan) Identity() bool {
	if p.reshape {
		return p.To == p.From
	}
	return p.perm == IdentityPerm
}

// Remap maps every coordinate and fails if two land on the same cell.
func (p Plan) Remap(coords []shared.Coord) ([]shared.Coord, error) {
	out := make([]shared.Coord, len(coords))
	seen := make(map[shared.Coord]int, len(coords))
	for idx, c := range coords {
		mapped := p.Map(c)
		if prev, dup := seen[mapped]; dup {
			return nil, fmt.Errorf("%w: %v and %v both map to %v", ErrCollision, coords[prev], c, mapped)
		}
		seen[mapped] = idx
		out[idx] = mapped
	}
	return out, nil
}

// Enumerate lists every non-identity op valid for shape in a fixed order:
// transposes, swaps, moves, then reshapes over each factor pair.
func Enumerate(shape shared.Shape) []Op {
	var ops []Op
	eachPermutation(func(p Perm) {
		if p != IdentityPerm {
			ops = append(ops, Transpose(p))
		}
	})
	shared.EachAxisPair(func(a, b int) {
		ops = append(ops, SwapAxis(a, b))
	})
	for from := 0; from < shared.Dims; from++ {
		for to := 0; to < shared.Dims; to++ {
			if from != to {
				ops = append(ops, MoveAxis(from, to))
			}
		}
	}
	shared.EachAxisPair(func(a, b int) {
		product := shape[a] * shape[b]
		for li := 1; li <= product; li++ {
			if product%li != 0 {
				continue
			}
			lj := product / li
			if li == shape[a] && lj == shape[b] {
				continue
			}
			ops = append(ops, ReshapeAxis(a, b, li, lj))
		}
	})
	return ops
}

// eachPermutation visits the axis orderings in lexicographic order.
func eachPermutation(fn func(Perm)) {
	var p Perm
	var used [shared.Dims]bool
	var rec func(k int)
	rec = func(k int) {
		if k == shared.Dims {
			fn(p)
			return
		}
		for axis := 0; axis < shared.Dims; axis++ {
			if used[axis] {
				continue
			}
			used[axis] = true
			p[k] = axis
			rec(k + 1)
			used[axis] = false
		}
	}
	rec(0)
}
