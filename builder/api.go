// SPDX-License-Identifier: MIT
// Package: campusnav/builder
//
// api.go - the BuildGraph orchestrator and the Constructor type.

package builder

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// Constructor applies a deterministic graph mutation using the resolved config.
// Constructors validate parameters first and return sentinel errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the configuration from opts, and
// applies all constructors in order. The first constructor error is returned
// wrapped as "BuildGraph: %w".
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addEdge draws a weight and inserts u—v, wrapping store errors with method context.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s—%s, w=%d): %w: %w", method, u, v, w, ErrConstructFailed, err)
	}

	return nil
}
