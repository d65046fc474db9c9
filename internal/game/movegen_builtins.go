package game

import "fourd_chess/internal/shared"

func init() {
	mustRegisterGenerator(shared.King, generateKingMoves)
	mustRegisterGenerator(shared.Queen, generateQueenMoves)
	mustRegisterGenerator(shared.Rook, generateRookMoves)
	mustRegisterGenerator(shared.Bishop, generateBishopMoves)
	mustRegisterGenerator(shared.Knight, generateKnightMoves)
	mustRegisterGenerator(shared.Pawn, generatePawnMoves)
	mustRegisterGenerator(shared.Cat, generateCatMoves)
	mustRegisterGenerator(shared.Alien, generateAlienMoves)
}

func mustRegisterGenerator(v shared.Variant, gen Generator) {
	if err := RegisterGenerator(v, gen); err != nil {
		panic(err)
	}
}
