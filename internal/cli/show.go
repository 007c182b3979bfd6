package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/render"
)

var (
	showScramble string
	showPlain    bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Render a cube as a 2-D net",
	Long:  `Apply a scramble to a solved cube and render the result as a 2-D net.`,
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showScramble, "scramble", "", "Scramble algorithm to apply first")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Render without colors")
}

func runShow(cmd *cobra.Command, args []string) error {
	c := cube.New()
	if err := c.ApplyAlgorithm(showScramble); err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	if showPlain {
		fmt.Println(render.PlainNet(c.Faces()))
	} else {
		fmt.Println(render.Net(c.Faces()))
	}

	if verbose {
		fmt.Printf("Solved: %v\n", c.IsSolved())
	}

	return nil
}
