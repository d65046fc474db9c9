// Package layout remaps the board's coordinate space through tensor-style
// axis operations: transpose, swap, move and reshape.
package layout

import (
	"errors"
	"fmt"
	"strings"

	"fourd_chess/internal/shared"
)

var (
	ErrInvalidOperation = errors.New("invalid layout operation")
	ErrCollision        = errors.New("layout would stack two pieces on one cell")
)

type Kind uint8

const (
	KindTranspose Kind = iota
	KindSwapAxis
	KindMoveAxis
	KindReshapeAxis
)

func (k Kind) String() string {
	switch k {
	case KindTranspose:
		return "transpose"
	case KindSwapAxis:
		return "swap_axis"
	case KindMoveAxis:
		return "move_axis"
	case KindReshapeAxis:
		return "reshape_axis"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transpose":
		return KindTranspose, true
	case "swap_axis", "swap":
		return KindSwapAxis, true
	case "move_axis", "move":
		return KindMoveAxis, true
	case "reshape_axis", "reshape":
		return KindReshapeAxis, true
	default:
		return 0, false
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, ok := ParseKind(string(b))
	if !ok {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidOperation, b)
	}
	*k = parsed
	return nil
}

// Perm is an axis ordering: axis k of the result is axis Perm[k] of the input.
type Perm [shared.Dims]int

// IdentityPerm leaves every axis in place.
var IdentityPerm = Perm{0, 1, 2, 3}

func (p Perm) valid() bool {
	var seen [shared.Dims]bool
	for _, axis := range p {
		if axis < 0 || axis >= shared.Dims || seen[axis] {
			return false
		}
		seen[axis] = true
	}
	return true
}

// Op names one layout operation and its parameters. For swap_axis I and J
// are the exchanged axes; for move_axis I is the source and J the
// destination position; for reshape_axis LenI and LenJ are the new extents
// of axes I and J.
type Op struct {
	Kind Kind `json:"kind"`
	Perm Perm `json:"perm"`
	I    int  `json:"i"`
	J    int  `json:"j"`
	LenI int  `json:"lenI,omitempty"`
	LenJ int  `json:"lenJ,omitempty"`
}

func Transpose(perm Perm) Op { return Op{Kind: KindTranspose, Perm: perm} }

func SwapAxis(i, j int) Op { return Op{Kind: KindSwapAxis, I: i, J: j} }

func MoveAxis(from, to int) Op { return Op{Kind: KindMoveAxis, I: from, J: to} }

func ReshapeAxis(i, j, lenI, lenJ int) Op {
	return Op{Kind: KindReshapeAxis, I: i, J: j, LenI: lenI, LenJ: lenJ}
}

func (op Op) String() string {
	switch op.Kind {
	case KindTranspose:
		return fmt.Sprintf("transpose(%d,%d,%d,%d)", op.Perm[0], op.Perm[1], op.Perm[2], op.Perm[3])
	case KindSwapAxis:
		return fmt.Sprintf("swap_axis(%d,%d)", op.I, op.J)
	case KindMoveAxis:
		return fmt.Sprintf("move_axis(%d,%d)", op.I, op.J)
	case KindReshapeAxis:
		return fmt.Sprintf("reshape_axis(%d,%d,%d,%d)", op.I, op.J, op.LenI, op.LenJ)
	default:
		return op.Kind.String()
	}
}

func axisInRange(a int) bool { return a >= 0 && a < shared.Dims }

// permutation derives the transpose ordering for the permuting kinds.
func (op Op) permutation() (Perm, error) {
	switch op.Kind {
	case KindTranspose:
		if !op.Perm.valid() {
			return Perm{}, fmt.Errorf("%w: %v is not a permutation of the axes", ErrInvalidOperation, op.Perm)
		}
		return op.Perm, nil
	case KindSwapAxis:
		if !axisInRange(op.I) || !axisInRange(op.J) {
			return Perm{}, fmt.Errorf("%w: swap axes %d,%d out of range", ErrInvalidOperation, op.I, op.J)
		}
		p := IdentityPerm
		p[op.I], p[op.J] = p[op.J], p[op.I]
		return p, nil
	case KindMoveAxis:
		if !axisInRange(op.I) || !axisInRange(op.J) {
			return Perm{}, fmt.Errorf("%w: move axis %d to %d out of range", ErrInvalidOperation, op.I, op.J)
		}
		order := make([]int, 0, shared.Dims)
		for axis := 0; axis < shared.Dims; axis++ {
			if axis != op.I {
				order = append(order, axis)
			}
		}
		order = append(order[:op.J], append([]int{op.I}, order[op.J:]...)...)
		var p Perm
		copy(p[:], order)
		return p, nil
	default:
		return Perm{}, fmt.Errorf("%w: %s is not a permutation", ErrInvalidOperation, op.Kind)
	}
}
