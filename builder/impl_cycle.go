package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodCycle  = "Cycle"
	minCycleSize = 3
)

// Cycle returns a Constructor for C_n: the path P_n plus the closing edge (n-1)—0.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleSize, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
