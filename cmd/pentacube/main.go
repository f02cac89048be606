// Command pentacube enumerates maximum-weight tilings of the 60-tile cube
// surface by the twelve pentominoes, printing every solution tied for the
// best score found so far as the search discovers it.
package main

import (
	"log"
	"os"

	"github.com/katalvlaran/pentacube/solve"
)

func main() {
	solver, data, err := solve.Setup(os.Stdout)
	if err != nil {
		log.Fatalf("pentacube: setup failed: %v", err)
	}

	solver.Solve(data)
}
