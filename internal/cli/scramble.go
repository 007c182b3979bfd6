package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubesolver/internal/cube"
	"github.com/seamusw/cubesolver/internal/notation"
	"github.com/seamusw/cubesolver/internal/render"
	"github.com/seamusw/cubesolver/internal/scramble"
)

var (
	scrambleMoves  int
	scrambleSeed   int64
	scrambleRender bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble algorithm and print it.

With --seed the scramble is reproducible. Keep --moves small if you intend
to solve the result: the search space grows by a factor of 12 per move.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVar(&scrambleMoves, "moves", 5, "Number of scramble moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 uses the current time)")
	scrambleCmd.Flags().BoolVar(&scrambleRender, "render", false, "Render the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	moves := scramble.Random(scrambleMoves, rand.New(rand.NewSource(seed)))
	fmt.Println(notation.FormatMoves(moves))

	if scrambleRender {
		c := cube.New()
		c.ApplyMoves(moves)
		fmt.Println(render.Net(c.Faces()))
	}

	return nil
}
