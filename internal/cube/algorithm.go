package cube

import (
	"strings"

	"github.com/seamusw/cubesolver/internal/notation"
)

// ApplyAlgorithm applies a whitespace-separated move sequence to the cube,
// left to right.
//
// Parsing and application are interleaved: on the first invalid token the
// call fails with notation.ErrInvalidMove and the cube keeps the mutations
// from the preceding valid moves. Callers that need all-or-nothing behavior
// should parse with notation.ParseAlgorithm first, or Clone before calling.
func (c *Cube) ApplyAlgorithm(algorithm string) error {
	for _, tok := range strings.Fields(algorithm) {
		m, err := notation.ParseMove(tok)
		if err != nil {
			return err
		}
		c.ApplyMove(m)
	}
	return nil
}
