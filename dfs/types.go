package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Routes.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrNodeNotFound indicates that from or to does not exist in the graph.
	ErrNodeNotFound = errors.New("dfs: node not found")
)

// Route is one simple path and its total weight.
type Route struct {
	Path     []string
	Distance int64
}

// Hops returns the number of edges in r.
func (r Route) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Option configures Routes.
type Option func(*Options)

// Options holds configurable parameters for route enumeration.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// MaxHops, if non-negative, prunes routes with more edges. Default -1.
	MaxHops int

	// Limit, if positive, keeps only that many cheapest routes. Default 0 (all).
	Limit int

	// OnVisit, if non-nil, is called each time the walk steps onto a node with
	// the current hop count. Returning an error aborts enumeration.
	OnVisit func(id string, hops int) error
}

// DefaultOptions returns Options with a background context, no hop bound,
// no limit and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		MaxHops: -1,
	}
}

// WithContext sets the context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxHops bounds route length in edges.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		o.MaxHops = n
	}
}

// WithLimit keeps the k cheapest routes.
func WithLimit(k int) Option {
	return func(o *Options) {
		o.Limit = k
	}
}

// WithOnVisit installs a step hook.
func WithOnVisit(fn func(id string, hops int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
