package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/campusnav/core"
	"github.com/katalvlaran/campusnav/pqueue"
)

// ShortestPath answers a single (source, destination) query on g.
//
// Outcomes, checked in this order:
//  1. StatusInvalidInput if g is nil or either name is not a node of g.
//  2. StatusTrivial if source == destination: Path=[source], Distance=0.
//  3. StatusUnreachable if the destination has no path from the source.
//  4. StatusFound with the node sequence source…destination and its total weight.
//
// None of these outcomes is an error; ShortestPath never fails for expected input.
func ShortestPath(g *core.Graph, source, destination string, opts ...Option) Result {
	res := Result{Source: source, Destination: destination}

	// 1) Unknown names
	if g == nil || !g.HasNode(source) || !g.HasNode(destination) {
		res.Status = StatusInvalidInput
		return res
	}

	// 2) Already there
	if source == destination {
		res.Status = StatusTrivial
		res.Path = []string{source}
		return res
	}

	// 3) Full single-source search; both names were validated above.
	tree, err := Search(g, source, opts...)
	if err != nil {
		res.Status = StatusInvalidInput
		return res
	}
	res.Stats = tree.Stats

	// 4) Reconstruct
	path, dist, err := tree.PathTo(destination)
	if err != nil {
		res.Status = StatusUnreachable
		return res
	}
	res.Status = StatusFound
	res.Path = path
	res.Distance = dist

	return res
}

// Search computes shortest distances from source to every node of g.
//
// Preconditions (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrNodeNotFound).
//
// Edge weights are in [1, core.MaxWeight] by construction (core.AddEdge rejects
// the rest), so no weight scan is needed here.
func Search(g *core.Graph, source string, opts ...Option) (*Tree, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, source)
	}

	// 3) Per-call state; nothing here outlives the call except the returned Tree.
	nodes := g.Nodes()
	r := &runner{
		g:         g,
		options:   cfg,
		dist:      make(map[string]int64, len(nodes)),
		prev:      make(map[string]string, len(nodes)),
		finalized: make(map[string]bool, len(nodes)),
		pq:        pqueue.New[string](len(nodes)),
	}

	// 4) Run
	r.init(source, nodes)
	r.process()

	cfg.Logger.Debugf("dijkstra: search from %q done: pops=%d pushes=%d stale=%d relaxations=%d",
		source, r.stats.Pops, r.stats.Pushes, r.stats.StaleSkips, r.stats.Relaxations)

	return &Tree{
		Source: source,
		Dist:   r.dist,
		Prev:   r.prev,
		Stats:  r.stats,
	}, nil
}

// PathTo reconstructs the path from t.Source to dest by walking Prev backwards.
// It returns the path (source first), its total distance, or ErrNodeNotFound /
// ErrUnreachable.
func (t *Tree) PathTo(dest string) ([]string, int64, error) {
	d, ok := t.Dist[dest]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, dest)
	}
	if d == Infinity {
		return nil, 0, fmt.Errorf("%w: %q from %q", ErrUnreachable, dest, t.Source)
	}

	// build reversed path
	path := []string{dest}
	for cur := dest; cur != t.Source; {
		p, ok := t.Prev[cur]
		if !ok || len(path) > len(t.Dist) {
			// A reached node always has a parent chain to the source.
			panic(fmt.Sprintf("dijkstra: broken parent chain at %q", cur))
		}
		path = append(path, p)
		cur = p
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, d, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g         *core.Graph             // read-only within the search
	options   Options                 // configuration
	dist      map[string]int64        // DistanceTable
	prev      map[string]string       // ParentTable
	finalized map[string]bool         // nodes already popped
	pq        *pqueue.MinHeap[string] // frontier, lazy decrease-key
	stats     Stats                   // work counters
}

// init sets every distance to Infinity, the source to 0, and seeds the heap.
func (r *runner) init(source string, nodes []string) {
	for _, v := range nodes {
		r.dist[v] = Infinity
	}
	r.dist[source] = 0
	r.push(0, source)
}

// process pops until the heap is empty, relaxing the neighbors of every popped node.
func (r *runner) process() {
	for !r.pq.IsEmpty() {
		item, err := r.pq.Pop()
		if err != nil {
			// The loop condition guarantees a non-empty heap.
			panic(fmt.Sprintf("dijkstra: %v", err))
		}
		r.stats.Pops++
		u := item.Value

		// Stale entry: u was finalized by an earlier, shorter entry.
		if r.finalized[u] && r.options.SkipFinalized {
			r.stats.StaleSkips++
			continue
		}
		r.finalized[u] = true

		r.options.Logger.Debugf("dijkstra: pop %q at %d", u, item.Priority)
		r.relax(u, item.Priority)
	}
}

// relax tries to improve every neighbor of u through u, where d is the distance
// carried by the popped entry. Only strictly shorter candidates update the tables,
// so relaxing into a node whose distance is already optimal changes nothing.
func (r *runner) relax(u string, d int64) {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		// u came out of the heap, so it is a node of the graph.
		panic(fmt.Sprintf("dijkstra: neighbors of %q: %v", u, err))
	}

	for _, nb := range neighbors {
		// Saturate: a sum that would reach Infinity is no path at all.
		if nb.Weight >= Infinity-d {
			continue
		}
		candidate := d + nb.Weight
		if candidate >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = candidate
		r.prev[nb.ID] = u
		r.stats.Relaxations++
		r.push(candidate, nb.ID)
	}
}

func (r *runner) push(priority int64, id string) {
	r.pq.Push(priority, id)
	r.stats.Pushes++
}
