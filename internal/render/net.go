// Package render draws a cube as a 2-D net for terminal display.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/seamusw/cubesolver/internal/cube"
)

// One style per sticker color; the letter stays visible so the net remains
// readable on terminals that drop the background color.
var stickerStyles = map[cube.Color]lipgloss.Style{
	cube.White:  lipgloss.NewStyle().Background(lipgloss.Color("15")).Foreground(lipgloss.Color("0")),
	cube.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("11")).Foreground(lipgloss.Color("0")),
	cube.Green:  lipgloss.NewStyle().Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0")),
	cube.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("12")).Foreground(lipgloss.Color("15")),
	cube.Red:    lipgloss.NewStyle().Background(lipgloss.Color("9")).Foreground(lipgloss.Color("15")),
	cube.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
}

const cellWidth = 3

// Net renders a colored 2-D net of the given face layout: U on top,
// L F R B in the middle band, D at the bottom. The input is the read-only
// view produced by (*cube.Cube).Faces.
func Net(faces [6][3][3]cube.Color) string {
	return net(faces, func(c cube.Color) string {
		return stickerStyles[c].Render(" " + c.String() + " ")
	})
}

// PlainNet renders the same layout with bare letters and no styling, for
// non-TTY output.
func PlainNet(faces [6][3][3]cube.Color) string {
	return net(faces, func(c cube.Color) string {
		return " " + c.String() + " "
	})
}

func net(faces [6][3][3]cube.Color, cell func(cube.Color) string) string {
	var b strings.Builder
	indent := strings.Repeat(" ", cellWidth*3)

	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeRow(&b, faces[cube.U][row], cell)
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		for _, f := range []cube.Face{cube.L, cube.F, cube.R, cube.B} {
			writeRow(&b, faces[f][row], cell)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		writeRow(&b, faces[cube.D][row], cell)
		b.WriteByte('\n')
	}

	return b.String()
}

func writeRow(b *strings.Builder, row [3]cube.Color, cell func(cube.Color) string) {
	for _, c := range row {
		b.WriteString(cell(c))
	}
}
