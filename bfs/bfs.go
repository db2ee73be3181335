package bfs

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
)

// frontier is a FIFO of nodes waiting to be visited. Popping advances head
// instead of reslicing, so the backing array is reused for the whole walk.
type frontier struct {
	ids  []string
	head int
}

func (f *frontier) push(id string) { f.ids = append(f.ids, id) }
func (f *frontier) empty() bool    { return f.head == len(f.ids) }
func (f *frontier) pop() string {
	id := f.ids[f.head]
	f.head++
	return id
}

// BFS walks g outward from start, one hop ring at a time. Edge weights are ignored.
//
// Errors: ErrGraphNil, ErrNegativeDepth, ErrStartNotFound, the context error
// on cancellation, and any OnVisit error (wrapped).
func BFS(g *core.Graph, start string, opts ...Option) (*Reach, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bad != nil {
		return nil, cfg.bad
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	r := &Reach{
		Start:  start,
		Order:  make([]string, 0, n),
		Hops:   map[string]int{start: 0},
		Parent: make(map[string]string, n),
	}
	q := &frontier{ids: make([]string, 0, n)}
	q.push(start)

	for !q.empty() {
		select {
		case <-cfg.Ctx.Done():
			return r, cfg.Ctx.Err()
		default:
		}

		id := q.pop()
		hops := r.Hops[id]
		r.Order = append(r.Order, id)
		if cfg.OnVisit != nil {
			if err := cfg.OnVisit(id, hops); err != nil {
				return r, fmt.Errorf("bfs: visiting %q: %w", id, err)
			}
		}
		if cfg.MaxDepth > 0 && hops >= cfg.MaxDepth {
			continue
		}

		nbs, err := g.Neighbors(id)
		if err != nil {
			return r, fmt.Errorf("bfs: neighbors of %q: %w", id, err)
		}
		for _, nb := range nbs {
			if r.Reached(nb.ID) {
				continue
			}
			if cfg.Follow != nil && !cfg.Follow(id, nb.ID) {
				continue
			}
			r.Hops[nb.ID] = hops + 1
			r.Parent[nb.ID] = id
			q.push(nb.ID)
		}
	}

	return r, nil
}

// Components groups the nodes of g into connected components. Groups are
// ordered by their earliest node in g.NodesInOrder; members are in visit order.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	assigned := make(map[string]bool, g.NodeCount())
	var groups [][]string
	for _, id := range g.NodesInOrder() {
		if assigned[id] {
			continue
		}
		r, err := BFS(g, id)
		if err != nil {
			return nil, err
		}
		for _, member := range r.Order {
			assigned[member] = true
		}
		groups = append(groups, r.Order)
	}

	return groups, nil
}
