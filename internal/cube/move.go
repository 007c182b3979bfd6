package cube

import "github.com/seamusw/cubesolver/pkg/types"

// sticker addresses one facelet by face and position.
type sticker struct {
	f Face
	i int
}

// edgeStrips lists, for each rotating face, the 4 edge strips on the
// adjacent faces in the order a clockwise turn carries them: strip s moves
// onto strip s+1 (mod 4). Each strip is given in the element order it lands
// in, so strips that sit reversed in their neighbor's coordinate frame are
// written with descending indices. These 24 mappings are fixed properties
// of the face layout, independent of turn direction.
var edgeStrips = [6][4][3]sticker{
	U: {
		{{F, 0}, {F, 1}, {F, 2}},
		{{L, 0}, {L, 1}, {L, 2}},
		{{B, 0}, {B, 1}, {B, 2}},
		{{R, 0}, {R, 1}, {R, 2}},
	},
	D: {
		{{F, 6}, {F, 7}, {F, 8}},
		{{R, 6}, {R, 7}, {R, 8}},
		{{B, 6}, {B, 7}, {B, 8}},
		{{L, 6}, {L, 7}, {L, 8}},
	},
	F: {
		{{U, 6}, {U, 7}, {U, 8}},
		{{R, 0}, {R, 3}, {R, 6}},
		{{D, 2}, {D, 1}, {D, 0}},
		{{L, 8}, {L, 5}, {L, 2}},
	},
	B: {
		{{U, 2}, {U, 1}, {U, 0}},
		{{L, 0}, {L, 3}, {L, 6}},
		{{D, 6}, {D, 7}, {D, 8}},
		{{R, 8}, {R, 5}, {R, 2}},
	},
	R: {
		{{U, 2}, {U, 5}, {U, 8}},
		{{B, 6}, {B, 3}, {B, 0}},
		{{D, 2}, {D, 5}, {D, 8}},
		{{F, 2}, {F, 5}, {F, 8}},
	},
	L: {
		{{U, 0}, {U, 3}, {U, 6}},
		{{F, 0}, {F, 3}, {F, 6}},
		{{D, 0}, {D, 3}, {D, 6}},
		{{B, 8}, {B, 5}, {B, 2}},
	},
}

// Turn applies a quarter turn of the given face.
func (c *Cube) Turn(face Face, turn types.Turn) {
	if turn == types.TurnCCW {
		c.rotateFaceCCW(face)
		c.cycleEdges(face, -1)
		return
	}
	c.rotateFaceCW(face)
	c.cycleEdges(face, 1)
}

// ApplyMove applies a types.Move to the cube.
func (c *Cube) ApplyMove(m types.Move) {
	c.Turn(faceFromType(m.Face), m.Turn)
}

// ApplyMoves applies a sequence of moves to the cube.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.ApplyMove(m)
	}
}

// rotateFaceCW rotates a face 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	// Corner cycle: 0->2->8->6->0
	// Edge cycle: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// rotateFaceCCW rotates a face 90 degrees counter-clockwise.
func (c *Cube) rotateFaceCCW(face Face) {
	f := &c.Facelets[face]
	temp := f[0]
	f[0] = f[2]
	f[2] = f[8]
	f[8] = f[6]
	f[6] = temp

	temp = f[1]
	f[1] = f[5]
	f[5] = f[7]
	f[7] = f[3]
	f[3] = temp
}

// cycleEdges shifts the 4 adjacent edge strips of a face by one position.
// shift 1 is the clockwise direction, -1 counter-clockwise. All 12 stickers
// are read before any is written, so the cycle is atomic.
func (c *Cube) cycleEdges(face Face, shift int) {
	strips := &edgeStrips[face]

	var vals [4][3]Color
	for s := 0; s < 4; s++ {
		for k := 0; k < 3; k++ {
			p := strips[s][k]
			vals[s][k] = c.Facelets[p.f][p.i]
		}
	}

	for s := 0; s < 4; s++ {
		src := (s - shift + 4) % 4
		for k := 0; k < 3; k++ {
			p := strips[s][k]
			c.Facelets[p.f][p.i] = vals[src][k]
		}
	}
}

// faceFromType converts a types.Face to a cube Face index.
func faceFromType(f types.Face) Face {
	switch f {
	case types.FaceU:
		return U
	case types.FaceD:
		return D
	case types.FaceF:
		return F
	case types.FaceB:
		return B
	case types.FaceR:
		return R
	case types.FaceL:
		return L
	default:
		return U
	}
}
