// Cubesolver - search-based Rubik's Cube solver and benchmark CLI.
package main

import (
	"github.com/seamusw/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}
