package game

import (
	"errors"
	"fmt"
	"sync"

	"fourd_chess/internal/shared"
)

// GenContext is the read-only view a Generator works from. Generators must
// not keep it past the call.
type GenContext struct {
	Board   *Board
	Players []Player
}

func (ctx GenContext) player(id int) Player {
	if id >= 0 && id < len(ctx.Players) {
		return ctx.Players[id]
	}
	return newPlayer(id % MaxPlayers)
}

// Generator enumerates the legal options of one piece. It never mutates.
type Generator func(ctx GenContext, pc *Piece) []Move

var (
	generatorRegistryMu sync.RWMutex
	generatorRegistry   map[shared.Variant]Generator

	ErrDuplicateRegistration  = errors.New("game: move generator already registered")
	ErrNilGenerator           = errors.New("game: nil move generator")
	ErrInvalidVariant         = errors.New("game: invalid piece variant")
	ErrGeneratorNotRegistered = errors.New("game: move generator not registered")
)

// RegisterGenerator associates a variant with its move generator.
func RegisterGenerator(v shared.Variant, gen Generator) error {
	if !v.Valid() {
		return ErrInvalidVariant
	}
	if gen == nil {
		return ErrNilGenerator
	}

	generatorRegistryMu.Lock()
	defer generatorRegistryMu.Unlock()
	if generatorRegistry == nil {
		generatorRegistry = make(map[shared.Variant]Generator, shared.VariantCount)
	}
	if _, exists := generatorRegistry[v]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateRegistration, v)
	}
	generatorRegistry[v] = gen
	return nil
}

func resolveGenerator(v shared.Variant) (Generator, error) {
	generatorRegistryMu.RLock()
	gen := generatorRegistry[v]
	generatorRegistryMu.RUnlock()

	if gen == nil {
		return nil, fmt.Errorf("%w: %s", ErrGeneratorNotRegistered, v)
	}
	return gen, nil
}

// generateMoves dispatches on the piece's effective variant, so a scratched
// piece always lands on the pawn generator.
func generateMoves(ctx GenContext, pc *Piece) []Move {
	if pc == nil || !pc.Alive {
		return nil
	}
	gen, err := resolveGenerator(pc.Effective())
	if err != nil {
		return nil
	}
	return gen(ctx, pc)
}
