package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/builder"
	"github.com/katalvlaran/campusnav/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, "A"); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, "missing"); !errors.Is(err, bfs.ErrStartNotFound) {
		t.Errorf("missing start: want ErrStartNotFound, got %v", err)
	}
	_ = g.AddEdge("A", "B", 1)
	if _, err := bfs.BFS(g, "A", bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrNegativeDepth) {
		t.Errorf("negative depth: want ErrNegativeDepth, got %v", err)
	}
	if _, err := bfs.Components(nil); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("Components(nil): want ErrGraphNil, got %v", err)
	}
}

// TestBFS_CycleDepths covers a 4-cycle: hop depths ignore weights.
func TestBFS_CycleDepths(t *testing.T) {
	// A–B–C–D–A, with a heavy A–D edge that BFS still treats as one hop.
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("C", "D", 1)
	_ = g.AddEdge("D", "A", 50)

	res, err := bfs.BFS(g, "A")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "D", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	want := map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}
	if !reflect.DeepEqual(res.Hops, want) {
		t.Errorf("Hops = %v; want %v", res.Hops, want)
	}
	path, err := res.PathTo("C")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(C) = %v; want %v", path, want)
	}
}

// TestBFS_MaxDepthAndFilter checks depth limiting and neighbor filtering.
func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithIDScheme(builder.SymbolIDFn)}, builder.Path(5))
	if err != nil {
		t.Fatal(err)
	}

	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B", "C"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MaxDepth(2) Order = %v; want %v", res.Order, want)
	}
	if _, err := res.PathTo("E"); !errors.Is(err, bfs.ErrNotReached) {
		t.Errorf("PathTo(E) beyond MaxDepth: want ErrNotReached, got %v", err)
	}

	res, err = bfs.BFS(g, "A", bfs.WithFollow(func(_, to string) bool { return to != "C" }))
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"A", "B"}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("filtered Order = %v; want %v", res.Order, want)
	}
}

// TestBFS_HooksAndCancel covers OnVisit aborts and context cancellation.
func TestBFS_HooksAndCancel(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)

	stop := errors.New("stop")
	_, err := bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("OnVisit abort: want stop, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, "A", bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: want context.Canceled, got %v", err)
	}
}

// TestComponents splits a graph with two islands.
func TestComponents(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("X", "Y", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("Y", "Z", 1)

	comps, err := bfs.Components(g)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"A", "B", "C"}, {"X", "Y", "Z"}}
	if !reflect.DeepEqual(comps, want) {
		t.Errorf("Components = %v; want %v", comps, want)
	}
}
