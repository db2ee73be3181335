package cmd

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
)

// Input contains the flag values shared by all commands
type Input struct {
	networkPath   string
	verbose       bool
	logFormat     logFormat
	skipFinalized bool

	from   string
	to     string
	sorted bool
	addr   string
}

// LoadNetwork returns the network named by --network, or the built-in one.
func (i *Input) LoadNetwork() (*campus.Network, error) {
	if i.networkPath == "" {
		return campus.Default(campus.WithLogger(log.StandardLogger()))
	}

	return campus.Load(i.networkPath, campus.WithLogger(log.StandardLogger()))
}

// SearchOptions returns the dijkstra options selected by flags.
func (i *Input) SearchOptions() []dijkstra.Option {
	return []dijkstra.Option{
		dijkstra.WithSkipFinalized(i.skipFinalized),
		dijkstra.WithLogger(log.StandardLogger()),
	}
}

// logFormat is the --log-format flag value.
type logFormat string

const (
	logFormatText logFormat = "text"
	logFormatJSON logFormat = "json"
)

var _ pflag.Value = (*logFormat)(nil)

func (f *logFormat) String() string {
	if *f == "" {
		return string(logFormatText)
	}
	return string(*f)
}

func (f *logFormat) Set(s string) error {
	switch v := logFormat(strings.ToLower(s)); v {
	case logFormatText, logFormatJSON:
		*f = v
		return nil
	default:
		return fmt.Errorf("must be %q or %q", logFormatText, logFormatJSON)
	}
}

func (f *logFormat) Type() string {
	return "format"
}

func (f *logFormat) formatter() log.Formatter {
	if *f == logFormatJSON {
		return &log.JSONFormatter{}
	}
	return &log.TextFormatter{}
}
