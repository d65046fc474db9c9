package shared

import "testing"

func TestInBounds(t *testing.T) {
	shape := Shape{4, 3, 2, 1}
	tests := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0, 0, 0}, true},
		{Coord{3, 2, 1, 0}, true},
		{Coord{4, 0, 0, 0}, false},
		{Coord{0, 3, 0, 0}, false},
		{Coord{0, 0, 2, 0}, false},
		{Coord{0, 0, 0, 1}, false},
		{Coord{-1, 0, 0, 0}, false},
	}
	for _, tt := range tests {
		if got := InBounds(tt.c, shape); got != tt.want {
			t.Errorf("InBounds(%v, %v) = %v, want %v", tt.c, shape, got, tt.want)
		}
	}
}

func TestAddDoesNotClamp(t *testing.T) {
	got := Add(Coord{3, 0, 1, 2}, Coord{2, -1, 0, 1})
	if want := (Coord{5, -1, 1, 3}); got != want {
		t.Fatalf("Add = %v, want %v", got, want)
	}
}

func TestDirectionTableSizes(t *testing.T) {
	tests := []struct {
		name string
		got  []Coord
		want int
	}{
		{"king", KingOffsets(), 80},
		{"rook", RookDirections(), 8},
		{"bishop", BishopDirections(), 72},
		{"knight", KnightOffsets(), 48},
	}
	for _, tt := range tests {
		if len(tt.got) != tt.want {
			t.Errorf("%s: %d vectors, want %d", tt.name, len(tt.got), tt.want)
		}
		seen := make(map[Coord]bool, len(tt.got))
		for _, v := range tt.got {
			if seen[v] {
				t.Errorf("%s: duplicate vector %v", tt.name, v)
			}
			seen[v] = true
			if v == (Coord{}) {
				t.Errorf("%s: zero vector", tt.name)
			}
		}
	}
}

func TestQueenDirectionsCoverKingOffsets(t *testing.T) {
	union := make(map[Coord]bool)
	for _, v := range RookDirections() {
		union[v] = true
	}
	for _, v := range BishopDirections() {
		union[v] = true
	}
	for _, v := range KingOffsets() {
		if !union[v] {
			t.Fatalf("king offset %v missing from rook+bishop directions", v)
		}
	}
}

func TestParseCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    Coord
		wantErr bool
	}{
		{"1,2,3,0", Coord{1, 2, 3, 0}, false},
		{"(0, 0, 0, 3)", Coord{0, 0, 0, 3}, false},
		{" ( 2,1 ,0,0 ) ", Coord{2, 1, 0, 0}, false},
		{"1,2,3", Coord{}, true},
		{"a,b,c,d", Coord{}, true},
	}
	for _, tt := range tests {
		got, err := ParseCoord(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCoord(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCoord(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseShape(t *testing.T) {
	for _, in := range []string{"4x4x2x8", "4,4,2,8", "4X4X2X8", " 4x4X2x8 "} {
		got, err := ParseShape(in)
		if err != nil {
			t.Fatalf("ParseShape(%q): %v", in, err)
		}
		if want := (Shape{4, 4, 2, 8}); got != want {
			t.Fatalf("ParseShape(%q) = %v, want %v", in, got, want)
		}
		if got.Cells() != 256 {
			t.Fatalf("Cells() = %d, want 256", got.Cells())
		}
	}
	if _, err := ParseShape("4x4"); err == nil {
		t.Fatalf("expected error for short shape")
	}
}

func TestAbilitiesOf(t *testing.T) {
	if !AbilitiesOf(Cat).Contains(AbilityScratch) {
		t.Fatalf("cat should scratch")
	}
	if !AbilitiesOf(Alien).Contains(AbilityLayout) {
		t.Fatalf("alien should reshape the layout")
	}
	if len(AbilitiesOf(Queen)) != 0 {
		t.Fatalf("queen has no abilities")
	}
}
