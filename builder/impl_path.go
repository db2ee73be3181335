package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodPath  = "Path"
	minPathSize = 2
)

// Path returns a Constructor for the simple path P_n: id(0)—id(1)—…—id(n-1).
// Edge order: (0,1), (1,2), … Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathSize, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
