// Package campus loads campus networks: named buildings joined by weighted
// walkways, described in YAML and turned into a core.Graph.
//
// File format:
//
//	name: IST Campus
//	edges:
//	  - {from: IST Mosque, to: Block 2, weight: 2}
//
// Files are decoded strictly (unknown keys are errors) and validated before any
// edge reaches the graph. Default returns the IST network compiled into the binary.
package campus

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/core"
)

// ErrInvalidNetwork wraps every decoding and validation failure.
var ErrInvalidNetwork = errors.New("campus: invalid network")

//go:embed ist.yaml
var istNetwork []byte

var validate = validator.New()

// Walkway is one walkway in a network file.
type Walkway struct {
	From   string `yaml:"from" validate:"required"`
	To     string `yaml:"to" validate:"required"`
	Weight int64  `yaml:"weight" validate:"gt=0,lte=2147483647"`
}

// Document is the on-disk form of a network.
type Document struct {
	Name  string    `yaml:"name" validate:"required"`
	Edges []Walkway `yaml:"edges" validate:"required,min=1,dive"`
}

// Network is a loaded campus graph. It is not modified after loading.
type Network struct {
	Name  string
	Graph *core.Graph

	// Components lists connected groups of buildings; more than one means some
	// queries will come back unreachable.
	Components [][]string
}

// Buildings returns building names in the order the file introduced them.
func (n *Network) Buildings() []string {
	return n.Graph.NodesInOrder()
}

// Connected reports whether every building can reach every other one.
func (n *Network) Connected() bool {
	return len(n.Components) <= 1
}

type options struct {
	logger logrus.FieldLogger
}

// Option configures loading.
type Option func(*options)

// WithLogger sets the logger that receives the load summary.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Default returns the built-in IST campus network.
func Default(opts ...Option) (*Network, error) {
	return Parse(istNetwork, opts...)
}

// Load reads and parses the network file at path.
func Load(path string, opts ...Option) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("campus: read %s: %w", path, err)
	}

	return Parse(data, opts...)
}

// Parse decodes and validates YAML bytes, then builds the network.
func Parse(data []byte, opts ...Option) (*Network, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidNetwork)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidNetwork, err)
	}

	return Build(doc, opts...)
}

// Build validates doc and inserts its edges into a fresh graph.
//
// Steps:
//  1. Struct validation (name, at least one edge, endpoints, 0 < weight <= core.MaxWeight).
//  2. Insert edges in file order, so Buildings() follows the file.
//  3. Compute connected components and log a summary.
func Build(doc Document, opts ...Option) (*Network, error) {
	o := newOptions(opts)

	// 1) Validate
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidNetwork, describe(err))
	}

	// 2) Insert
	g := core.NewGraph()
	for i, e := range doc.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d: %w", ErrInvalidNetwork, i, err)
		}
	}

	// 3) Connectivity
	comps, err := bfs.Components(g)
	if err != nil {
		return nil, fmt.Errorf("campus: components: %w", err)
	}

	n := &Network{Name: doc.Name, Graph: g, Components: comps}
	log := o.logger.WithFields(logrus.Fields{
		"network":   n.Name,
		"buildings": g.NodeCount(),
		"walkways":  g.EdgeCount(),
	})
	if !n.Connected() {
		log.WithField("components", len(comps)).Warn("campus network is not connected, some routes are unreachable")
	} else {
		log.Debug("campus network loaded")
	}

	return n, nil
}

// describe flattens validator errors into "Edges[2].Weight must be gt 0; ..." form.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Document.")
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s must be %s %s", field, fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s is %s", field, fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
