// Package render turns dijkstra results into the text shown to people.
//
// The wording is fixed; scripts and existing users compare it verbatim:
//
//	Shortest path from {src} to {dest} is {distance} units.
//	Path: {n1} -> {n2} -> ... -> {nk}
//
//	No path found from {src} to {dest}
//
// Trivial and invalid queries get their own one-line messages.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/campusnav/dijkstra"
)

// Separator joins consecutive nodes of a path.
const Separator = " -> "

// Fixed messages.
const (
	InvalidInputMessage = "Invalid building name. Please check the input."
	TrivialMessage      = "Open your eyes. Use your mind. You are already at your destination."

	// Welcome is printed once when an interactive session starts.
	Welcome = "=============================================\n" +
		"  Welcome to AI-Driven Path Planner for IST Campus Navigation!\n" +
		"============================================="

	// Farewell is printed when an interactive session ends.
	Farewell = "Have a safe journey! Wear your ID cards and beware of TP."
)

// PathString joins path with Separator.
func PathString(path []string) string {
	return strings.Join(path, Separator)
}

// Text renders r without a trailing newline.
func Text(r dijkstra.Result) string {
	switch r.Status {
	case dijkstra.StatusFound:
		return fmt.Sprintf("Shortest path from %s to %s is %d units.\nPath: %s",
			r.Source, r.Destination, r.Distance, PathString(r.Path))
	case dijkstra.StatusTrivial:
		return TrivialMessage
	case dijkstra.StatusUnreachable:
		return fmt.Sprintf("No path found from %s to %s", r.Source, r.Destination)
	default:
		return InvalidInputMessage
	}
}

// Write renders r to w followed by a newline.
func Write(w io.Writer, r dijkstra.Result) error {
	_, err := fmt.Fprintln(w, Text(r))

	return err
}
