package shared

import (
	"fmt"
	"strings"
)

type Variant uint8

const (
	King Variant = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	Cat
	Alien
	VariantCount
)

var AllVariants = []Variant{King, Queen, Rook, Bishop, Knight, Pawn, Cat, Alien}

func (v Variant) Valid() bool { return v < VariantCount }

func (v Variant) String() string {
	switch v {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	case Cat:
		return "Cat"
	case Alien:
		return "Alien"
	default:
		return fmt.Sprintf("variant(%d)", v)
	}
}

// Symbol is the single-letter notation for the variant.
func (v Variant) Symbol() string {
	switch v {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	case Cat:
		return "C"
	case Alien:
		return "A"
	default:
		return "?"
	}
}

func ParseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "king", "k":
		return King, true
	case "queen", "q":
		return Queen, true
	case "rook", "r":
		return Rook, true
	case "bishop", "b":
		return Bishop, true
	case "knight", "n":
		return Knight, true
	case "pawn", "p":
		return Pawn, true
	case "cat", "c":
		return Cat, true
	case "alien", "a":
		return Alien, true
	default:
		return VariantCount, false
	}
}

func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid variant %d", v)
	}
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(b []byte) error {
	parsed, ok := ParseVariant(string(b))
	if !ok {
		return fmt.Errorf("unknown variant %q", b)
	}
	*v = parsed
	return nil
}
