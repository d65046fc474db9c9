package shared

// KingOffsets returns every vector with components in {-1,0,1} except zero.
func KingOffsets() []Coord {
	out := make([]Coord, 0, 80)
	eachUnitVector(func(v Coord) {
		if nonZero(v) > 0 {
			out = append(out, v)
		}
	})
	return out
}

// RookDirections returns the two unit directions along each axis.
func RookDirections() []Coord {
	out := make([]Coord, 0, 2*Dims)
	for axis := 0; axis < Dims; axis++ {
		out = append(out, Unit(axis, 1), Unit(axis, -1))
	}
	return out
}

// BishopDirections returns the diagonal directions: every {-1,0,1} vector
// moving along two or more axes at once.
func BishopDirections() []Coord {
	out := make([]Coord, 0, 72)
	eachUnitVector(func(v Coord) {
		if nonZero(v) >= 2 {
			out = append(out, v)
		}
	})
	return out
}

var knightSteps = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

// KnightOffsets applies the eight two-and-one offsets to every unordered
// pair of axes.
func KnightOffsets() []Coord {
	out := make([]Coord, 0, 8*AxisPairCount)
	EachAxisPair(func(a, b int) {
		for _, st := range knightSteps {
			var v Coord
			v[a] = st[0]
			v[b] = st[1]
			out = append(out, v)
		}
	})
	return out
}

// AxisPairCount is the number of unordered axis pairs.
const AxisPairCount = Dims * (Dims - 1) / 2

// EachAxisPair calls fn for every a < b.
func EachAxisPair(fn func(a, b int)) {
	for a := 0; a < Dims; a++ {
		for b := a + 1; b < Dims; b++ {
			fn(a, b)
		}
	}
}

func eachUnitVector(fn func(Coord)) {
	var v Coord
	var rec func(axis int)
	rec = func(axis int) {
		if axis == Dims {
			fn(v)
			return
		}
		for _, d := range [3]int{-1, 0, 1} {
			v[axis] = d
			rec(axis + 1)
		}
	}
	rec(0)
}

func nonZero(v Coord) int {
	n := 0
	for _, c := range v {
		if c != 0 {
			n++
		}
	}
	return n
}

// Abs returns |v|.
func Abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
