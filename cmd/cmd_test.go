package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/campusnav/bfs"
	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/render"
)

func defaultNetwork(t *testing.T) *campus.Network {
	t.Helper()
	n, err := campus.Default()
	require.NoError(t, err)
	return n
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd := createRootCommand(context.Background(), &Input{}, "test")
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	log.SetLevel(log.InfoLevel)
	log.SetFormatter(&log.TextFormatter{})

	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	out, err := execute(t, "route", "--from", "IST Mosque", "--to", "Faculty Hostel")
	require.NoError(t, err)
	assert.Equal(t, "Shortest path from IST Mosque to Faculty Hostel is 6 units.\n"+
		"Path: IST Mosque -> IST Girls Hostel -> IST Cricket Ground -> Faculty Hostel\n", out)
}

func TestRouteCommand_Invalid(t *testing.T) {
	out, err := execute(t, "route", "--from", "IST Mosque", "--to", "Moon Base")
	require.ErrorIs(t, err, errInvalidBuilding)
	assert.Equal(t, render.InvalidInputMessage+"\n", out)
}

func TestReportError(t *testing.T) {
	var out bytes.Buffer
	reportError(&out, fmt.Errorf("%w: %q", errInvalidBuilding, "Moon Base"))
	assert.Empty(t, out.String())

	reportError(&out, errors.New("network file unreadable"))
	assert.Equal(t, "Error: network file unreadable\n", out.String())
}

func TestRouteCommand_MissingFlag(t *testing.T) {
	_, err := execute(t, "route", "--from", "Gym")
	require.Error(t, err)
}

func TestRouteCommand_NetworkFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.yaml")
	doc := "name: Tiny\nedges:\n  - {from: Gate, to: Hall, weight: 5}\n  - {from: Yard, to: Shed, weight: 1}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	out, err := execute(t, "-n", path, "route", "--from", "Gate", "--to", "Shed")
	require.NoError(t, err)
	assert.Equal(t, "No path found from Gate to Shed\n", out)

	out, err = execute(t, "-n", path, "route", "--from", "Hall", "--to", "Hall", "--skip-finalized=false")
	require.NoError(t, err)
	assert.Equal(t, render.TrivialMessage+"\n", out)

	_, err = execute(t, "-n", filepath.Join(t.TempDir(), "none.yaml"), "buildings")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuildingsCommand(t *testing.T) {
	out, err := execute(t, "buildings")
	require.NoError(t, err)
	assert.Contains(t, out, "1. IST Mosque\n2. IST Girls Hostel\n3. Block 2\n")
	assert.Contains(t, out, "15. IST Cricket Ground\n")

	out, err = execute(t, "buildings", "--sorted", "--log-format", "json", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "1. Block 2\n2. Block 3\n")
}

func TestLogFormatFlag(t *testing.T) {
	var f logFormat
	assert.Equal(t, "text", f.String())
	require.NoError(t, f.Set("JSON"))
	assert.Equal(t, logFormatJSON, f)
	assert.IsType(t, &log.JSONFormatter{}, f.formatter())
	assert.Error(t, f.Set("xml"))

	_, err := execute(t, "--log-format", "yaml", "buildings")
	require.Error(t, err)
}

type scriptedPrompter struct {
	selects  []string
	confirms []bool
	err      error
}

func (p *scriptedPrompter) Select(_ string, _ []string) (string, error) {
	if len(p.selects) == 0 {
		return "", p.err
	}
	s := p.selects[0]
	p.selects = p.selects[1:]
	return s, nil
}

func (p *scriptedPrompter) Confirm(_ string) (bool, error) {
	if len(p.confirms) == 0 {
		return false, p.err
	}
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	return c, nil
}

func TestRunInteractive(t *testing.T) {
	n := defaultNetwork(t)
	p := &scriptedPrompter{
		selects:  []string{"IST Mosque", "Main Gate", "Gym", "Gym"},
		confirms: []bool{true, false},
	}

	var out bytes.Buffer
	require.NoError(t, runInteractive(&out, n, p))

	want := render.Welcome + "\n" +
		"\nShortest path from IST Mosque to Main Gate is 6 units.\n"
	got := out.String()
	assert.Contains(t, got, want)
	assert.Contains(t, got, "\n"+render.TrivialMessage+"\n\n")
	assert.Contains(t, got, render.Farewell+"\n")
}

func TestRunInteractive_Interrupt(t *testing.T) {
	n := defaultNetwork(t)

	var out bytes.Buffer
	p := &scriptedPrompter{selects: []string{"Gym"}, err: terminal.InterruptErr}
	require.NoError(t, runInteractive(&out, n, p))
	assert.Contains(t, out.String(), render.Farewell)

	boom := errors.New("tty gone")
	out.Reset()
	p = &scriptedPrompter{err: boom}
	require.ErrorIs(t, runInteractive(&out, n, p), boom)
	assert.NotContains(t, out.String(), render.Farewell)
}

func TestRoutesCommand(t *testing.T) {
	out, err := execute(t, "routes", "--from", "Gym", "--to", "Block 6", "-k", "2")
	require.NoError(t, err)
	assert.Equal(t, "1. 4 units: Gym -> Block 3 -> Block 6\n"+
		"2. 10 units: Gym -> Block 2 -> Lawn -> Main Gate -> Block 7 -> Block 6\n", out)

	out, err = execute(t, "routes", "--from", "Gym", "--to", "Nowhere")
	require.ErrorIs(t, err, errInvalidBuilding)
	assert.Equal(t, render.InvalidInputMessage+"\n", out)
}

func TestRoutesCommand_StepBudget(t *testing.T) {
	_, err := execute(t, "routes", "--from", "IST Mosque", "--to", "Main Gate", "--max-steps", "3")
	require.ErrorIs(t, err, errStepBudget)

	out, err := execute(t, "routes", "--from", "Gym", "--to", "Block 6", "-k", "1", "--max-steps", "1000000")
	require.NoError(t, err)
	assert.Equal(t, "1. 4 units: Gym -> Block 3 -> Block 6\n", out)
}

func TestReachCommand(t *testing.T) {
	out, err := execute(t, "reach", "--from", "Gym", "--max-depth", "1")
	require.NoError(t, err)
	assert.Equal(t, "1  Gym -> Block 2\n1  Gym -> Block 3\n", out)

	out, err = execute(t, "reach", "--from", "Gym", "--max-depth", "2", "--avoid", "Block 3")
	require.NoError(t, err)
	assert.Equal(t, "1  Gym -> Block 2\n"+
		"2  Gym -> Block 2 -> IST Mosque\n"+
		"2  Gym -> Block 2 -> Lawn\n", out)

	out, err = execute(t, "reach", "--from", "Gym")
	require.NoError(t, err)
	assert.Equal(t, 14, strings.Count(out, "\n"))

	out, err = execute(t, "reach", "--from", "Gym", "--avoid", "Moon Base")
	require.ErrorIs(t, err, errInvalidBuilding)
	assert.Equal(t, render.InvalidInputMessage+"\n", out)

	_, err = execute(t, "reach", "--from", "Gym", "--max-depth=-1")
	require.ErrorIs(t, err, bfs.ErrNegativeDepth)
}
