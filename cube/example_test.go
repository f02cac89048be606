package cube_test

import (
	"fmt"

	"github.com/katalvlaran/pentacube/cube"
)

// ExampleNeighbour looks up tile 0's neighbour across its UP edge and the
// rotation twist picked up by crossing it.
func ExampleNeighbour() {
	t := cube.Tile(0)
	n := cube.Neighbour(t, cube.UP)
	twist := cube.Twist(t, cube.UP)
	fmt.Println(n, twist)
	// Output:
	// 55 3
}
