package dijkstra

import (
	"errors"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// Infinity marks a node that the search has not reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Search and Tree.PathTo.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that a source or destination is not in the graph.
	ErrNodeNotFound = errors.New("dijkstra: node not found in graph")

	// ErrUnreachable indicates that no path connects the source and destination.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Status classifies the outcome of a ShortestPath query.
type Status int

const (
	// StatusInvalidInput: source or destination is not a known node.
	StatusInvalidInput Status = iota

	// StatusTrivial: source equals destination; the path is the single node.
	StatusTrivial

	// StatusUnreachable: the destination cannot be reached from the source.
	StatusUnreachable

	// StatusFound: a shortest path was computed.
	StatusFound
)

// String returns the lower-case name used in logs and the HTTP API.
func (s Status) String() string {
	switch s {
	case StatusInvalidInput:
		return "invalid_input"
	case StatusTrivial:
		return "trivial"
	case StatusUnreachable:
		return "unreachable"
	case StatusFound:
		return "found"
	default:
		return "unknown"
	}
}

// Stats counts the work done by one search.
type Stats struct {
	Pushes      int // heap pushes, including the source
	Pops        int // heap pops
	StaleSkips  int // pops discarded because the node was already finalized
	Relaxations int // successful distance improvements
}

// Result is the answer to one ShortestPath query.
//
// Path and Distance are meaningful for StatusFound and StatusTrivial only.
type Result struct {
	Source      string
	Destination string
	Status      Status
	Path        []string
	Distance    int64
	Stats       Stats
}

// Tree is the outcome of a single-source search.
//
// Dist[v] is the shortest distance from Source to v (Infinity if unreached).
// Prev[v] is v's predecessor on one shortest path; Source and unreached nodes
// have no entry.
type Tree struct {
	Source string
	Dist   map[string]int64
	Prev   map[string]string
	Stats  Stats
}

// Options configures a search.
//
// SkipFinalized – discard heap entries for nodes that were already popped.
// Logger        – receives trace output for pops and relaxations.
type Options struct {
	SkipFinalized bool
	Logger        logrus.FieldLogger
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithSkipFinalized toggles the finalized-node guard. It only affects how much
// work the search does, never the distances it reports.
func WithSkipFinalized(skip bool) Option {
	return func(o *Options) {
		o.SkipFinalized = skip
	}
}

// WithLogger routes trace output to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// discardLogger swallows everything; it is the default Options.Logger.
var discardLogger = func() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)

	return l
}()

// DefaultOptions returns the options used when none are supplied:
// SkipFinalized=true and a discarding logger.
func DefaultOptions() Options {
	return Options{
		SkipFinalized: true,
		Logger:        discardLogger,
	}
}
