package cube

// Key is a canonical fixed-size fingerprint of the full sticker layout:
// all 54 stickers in face order U, D, F, B, R, L, row-major within a face.
// Keys are comparable and hashable, so they serve directly as map and set
// keys during search. Two cubes are search-equivalent iff their keys are
// equal.
type Key [54]byte

// Key returns the cube's fingerprint.
func (c *Cube) Key() Key {
	var k Key
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			k[f*9+i] = byte(c.Facelets[f][i])
		}
	}
	return k
}
