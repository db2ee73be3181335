package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

const (
	methodStar  = "Star"
	minStarSize = 2

	// StarCenter is the fixed name of the hub node built by Star.
	StarCenter = "Center"
)

// Star returns a Constructor for a hub "Center" joined to n-1 leaves id(0)…id(n-2).
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarSize {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarSize, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(methodStar, g, cfg, StarCenter, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
