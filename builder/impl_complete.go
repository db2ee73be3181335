package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodComplete  = "Complete"
	minCompleteSize = 2
)

// Complete returns a Constructor for K_n. Edge order: i asc, then j asc with j > i.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteSize, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(methodComplete, g, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
