package dfs

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/campusnav/core"
)

// routeWalker holds the state of one enumeration.
type routeWalker struct {
	graph  *core.Graph
	opts   Options
	target string

	path   []string        // current prefix, from first
	onPath map[string]bool // nodes in path
	seen   map[string]int  // node-sequence key -> index in found
	found  []Route
}

// Routes returns the simple routes from -> to, cheapest first.
//
// Steps:
//  1. Validate graph and endpoints.
//  2. Walk depth-first from from, never revisiting a node on the current prefix.
//  3. Record each arrival at to, keeping the lighter weight for repeated node sequences.
//  4. Sort and apply Limit.
//
// from == to yields the single route [from] with distance 0.
func Routes(g *core.Graph, from, to string, opts ...Option) ([]Route, error) {
	// 1) Validation
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(from) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	if !g.HasNode(to) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Walk
	w := &routeWalker{
		graph:  g,
		opts:   cfg,
		target: to,
		path:   make([]string, 0, g.NodeCount()),
		onPath: make(map[string]bool, g.NodeCount()),
		seen:   make(map[string]int),
	}
	if err := w.step(from, 0); err != nil {
		return nil, err
	}

	// 4) Order
	sort.Slice(w.found, func(i, j int) bool {
		a, b := w.found[i], w.found[j]
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if len(a.Path) != len(b.Path) {
			return len(a.Path) < len(b.Path)
		}
		return pathKey(a.Path) < pathKey(b.Path)
	})
	if cfg.Limit > 0 && len(w.found) > cfg.Limit {
		w.found = w.found[:cfg.Limit]
	}

	return w.found, nil
}

// step pushes id onto the prefix, explores, then pops it.
func (w *routeWalker) step(id string, dist int64) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	hops := len(w.path)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, hops); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	w.path = append(w.path, id)
	w.onPath[id] = true
	defer func() {
		w.path = w.path[:len(w.path)-1]
		delete(w.onPath, id)
	}()

	// 3) Arrival
	if id == w.target {
		w.record(dist)
		return nil
	}
	if w.opts.MaxHops >= 0 && hops >= w.opts.MaxHops {
		return nil
	}

	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, nb := range nbs {
		if w.onPath[nb.ID] {
			continue
		}
		if err := w.step(nb.ID, dist+nb.Weight); err != nil {
			return err
		}
	}

	return nil
}

func (w *routeWalker) record(dist int64) {
	key := pathKey(w.path)
	if i, ok := w.seen[key]; ok {
		if dist < w.found[i].Distance {
			w.found[i].Distance = dist
		}
		return
	}
	path := make([]string, len(w.path))
	copy(path, w.path)
	w.seen[key] = len(w.found)
	w.found = append(w.found, Route{Path: path, Distance: dist})
}

func pathKey(path []string) string {
	return strings.Join(path, "\x00")
}
