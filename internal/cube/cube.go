// Package cube provides a 3x3 Rubik's cube model and its quarter-turn move
// engine. A cube holds 6 faces of 9 stickers each; applying a move rotates
// one face and cycles the 4 adjacent edge strips.
package cube

import (
	"errors"
	"fmt"
)

// Size is the only supported cube dimension.
const Size = 3

// ErrUnsupportedSize is returned when construction is requested for a cube
// dimension other than 3.
var ErrUnsupportedSize = errors.New("cube: unsupported cube size")

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face identifies one of the 6 cube faces.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 stickers indexed row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) never moves.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// NewSize creates a solved cube of the given dimension. Only 3 is supported;
// any other value fails with ErrUnsupportedSize.
func NewSize(n int) (*Cube, error) {
	if n != Size {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, n)
	}
	return New(), nil
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case U:
		return White
	case D:
		return Yellow
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Red
	case L:
		return Orange
	default:
		return White
	}
}

// Reset restores the cube to the solved state in place.
func (c *Cube) Reset() {
	for face := Face(0); face < 6; face++ {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// IsSolved returns true if every face is uniformly one color.
//
// This deliberately does not compare against the canonical solved coloring:
// a cube whose faces are internally uniform but permuted relative to the
// original face/color assignment still counts as solved.
func (c *Cube) IsSolved() bool {
	for face := Face(0); face < 6; face++ {
		first := c.Facelets[face][0]
		for i := 1; i < 9; i++ {
			if c.Facelets[face][i] != first {
				return false
			}
		}
	}
	return true
}

// Faces returns a read-only copy of the sticker layout as 6 faces of 3x3
// grids, in face order U, D, F, B, R, L. Renderers consume this view; it
// never aliases the cube's own storage.
func (c *Cube) Faces() [6][3][3]Color {
	var out [6][3][3]Color
	for f := 0; f < 6; f++ {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				out[f][row][col] = c.Facelets[f][row*3+col]
			}
		}
	}
	return out
}

// String returns a text net of the cube: U on top, L F R B in the middle
// row, D at the bottom.
func (c *Cube) String() string {
	result := ""

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[U][row*3+col].String() + " "
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				result += c.Facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[D][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
