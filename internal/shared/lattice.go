package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// Dims is the rank of the board lattice.
const Dims = 4

// Coord addresses one cell of the board as (x, y, z, w).
type Coord [Dims]int

// Shape holds the per-axis extents of the board.
type Shape [Dims]int

// DefaultShape is the 4x4x4x4 board.
var DefaultShape = Shape{4, 4, 4, 4}

var axisNames = [Dims]string{"x", "y", "z", "w"}

// AxisName returns the conventional letter for an axis index.
func AxisName(axis int) string {
	if axis < 0 || axis >= Dims {
		return fmt.Sprintf("axis(%d)", axis)
	}
	return axisNames[axis]
}

// InBounds reports whether every component of c lies in [0, shape[i]).
func InBounds(c Coord, shape Shape) bool {
	for i := 0; i < Dims; i++ {
		if c[i] < 0 || c[i] >= shape[i] {
			return false
		}
	}
	return true
}

// Add is the component-wise sum. No bounds check.
func Add(c, delta Coord) Coord {
	var out Coord
	for i := 0; i < Dims; i++ {
		out[i] = c[i] + delta[i]
	}
	return out
}

// Scale multiplies every component of v by k.
func Scale(v Coord, k int) Coord {
	var out Coord
	for i := 0; i < Dims; i++ {
		out[i] = v[i] * k
	}
	return out
}

// Unit returns the basis vector along axis scaled by sign.
func Unit(axis, sign int) Coord {
	var out Coord
	out[axis] = sign
	return out
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c[0], c[1], c[2], c[3])
}

// ParseCoord accepts "x,y,z,w" with optional parentheses and spaces.
func ParseCoord(s string) (Coord, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "(")
	s = strings.TrimSuffix(s, ")")
	parts := strings.Split(s, ",")
	if len(parts) != Dims {
		return Coord{}, fmt.Errorf("coordinate %q: want %d comma-separated integers", s, Dims)
	}
	var c Coord
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
		}
		c[i] = v
	}
	return c, nil
}

// Cells is the total cell count, the product of all extents.
func (s Shape) Cells() int {
	n := 1
	for _, ext := range s {
		n *= ext
	}
	return n
}

// Valid reports whether every extent is at least one.
func (s Shape) Valid() bool {
	for _, ext := range s {
		if ext < 1 {
			return false
		}
	}
	return true
}

func (s Shape) String() string {
	return fmt.Sprintf("%dx%dx%dx%d", s[0], s[1], s[2], s[3])
}

// ParseShape accepts "4x4x4x4" (either case) or "4,4,4,4".
func ParseShape(s string) (Shape, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	sep := ","
	if strings.Contains(norm, "x") {
		sep = "x"
	}
	parts := strings.Split(norm, sep)
	if len(parts) != Dims {
		return Shape{}, fmt.Errorf("shape %q: want %d extents", s, Dims)
	}
	var out Shape
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Shape{}, fmt.Errorf("shape %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
