package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start node is not in the graph.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrNegativeDepth is returned for WithMaxDepth(d) with d < 0.
	ErrNegativeDepth = errors.New("bfs: max depth is negative")

	// ErrNotReached is returned by Reach.PathTo for nodes the walk never saw.
	ErrNotReached = errors.New("bfs: node not reached")
)

// Option tunes a walk.
type Option func(*Options)

// Options are the walk parameters. The zero value of every field means "off".
type Options struct {
	Ctx context.Context

	// OnVisit runs as each node leaves the queue; an error stops the walk.
	OnVisit func(id string, hops int) error

	// MaxDepth > 0 keeps the walk within that many hops of the start.
	MaxDepth int

	// Follow decides whether the edge from -> to may be taken.
	Follow func(from, to string) bool

	bad error
}

// DefaultOptions returns a background context and no hooks or limits.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext makes the walk stop when ctx is done. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs the visit hook.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth bounds the walk; 0 removes the bound.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.bad = fmt.Errorf("%w: %d", ErrNegativeDepth, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFollow restricts which edges the walk may take.
func WithFollow(fn func(from, to string) bool) Option {
	return func(o *Options) { o.Follow = fn }
}

// Reach is what a walk saw: nodes in visit order, their hop counts and the
// node each was first reached from.
type Reach struct {
	Start  string
	Order  []string
	Hops   map[string]int
	Parent map[string]string
}

// Reached reports whether the walk visited id.
func (r *Reach) Reached(id string) bool {
	_, ok := r.Hops[id]
	return ok
}

// PathTo returns a fewest-hops path Start..dest.
func (r *Reach) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %q", ErrNotReached, dest)
	}
	path := make([]string, 0, r.Hops[dest]+1)
	for cur := dest; cur != r.Start; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	path = append(path, r.Start)
	slices.Reverse(path)

	return path, nil
}
