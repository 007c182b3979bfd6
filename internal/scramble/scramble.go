// Package scramble generates random move sequences.
package scramble

import (
	"math/rand"

	"github.com/seamusw/cubesolver/pkg/types"
)

// Random returns n random quarter turns with no two consecutive moves on
// the same face (a same-face repeat partially cancels and weakens the
// scramble). The rng makes scrambles reproducible from a seed.
func Random(n int, rng *rand.Rand) []types.Move {
	moves := make([]types.Move, 0, n)
	lastFace := types.Face("")
	for len(moves) < n {
		m := types.AllMoves[rng.Intn(len(types.AllMoves))]
		if m.Face == lastFace {
			continue
		}
		moves = append(moves, m)
		lastFace = m.Face
	}
	return moves
}
