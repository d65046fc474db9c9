package game

import "fourd_chess/internal/shared"

// liveKings counts the kings each player still has on the board. Scratched
// kings still count.
func (e *Engine) liveKings() []int {
	counts := make([]int, len(e.players))
	for _, pc := range e.board.LivePieces() {
		if pc.Variant == shared.King && pc.Owner >= 0 && pc.Owner < len(counts) {
			counts[pc.Owner]++
		}
	}
	return counts
}

// updateGameStatus eliminates every player without a king and declares the
// last one standing the winner.
func (e *Engine) updateGameStatus() {
	kings := e.liveKings()
	remaining, last := 0, -1
	for i := range e.players {
		if kings[i] == 0 {
			e.players[i].Eliminated = true
		}
		if !e.players[i].Eliminated {
			remaining++
			last = i
		}
	}
	if remaining == 1 {
		e.status = StatusWon
		e.hasWinner = true
		e.winner = e.players[last].ID
		e.turn = last
		e.lastNote += ", " + e.players[last].Color + " wins"
	}
}

// advanceTurn passes the move to the next player in seat order that has not
// been eliminated.
func (e *Engine) advanceTurn() {
	n := len(e.players)
	for step := 1; step <= n; step++ {
		next := (e.turn + step) % n
		if !e.players[next].Eliminated {
			e.turn = next
			return
		}
	}
}
