package solver

import "github.com/seamusw/cubesolver/internal/cube"

// Score estimates the distance to a solved state by counting stickers that
// differ from their own face's center sticker, summed over all 6 faces. It
// is zero exactly when the cube is solved.
//
// The estimate is not admissible: a single quarter turn displaces up to 20
// stickers, so Score can exceed the true remaining move count. Search
// guided by it is greedy-informed and may return non-minimal solutions.
func Score(c *cube.Cube) int {
	misplaced := 0
	for f := 0; f < 6; f++ {
		center := c.Facelets[f][4]
		for i := 0; i < 9; i++ {
			if c.Facelets[f][i] != center {
				misplaced++
			}
		}
	}
	return misplaced
}
