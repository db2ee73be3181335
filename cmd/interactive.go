package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusnav/campus"
	"github.com/katalvlaran/campusnav/dijkstra"
	"github.com/katalvlaran/campusnav/render"
)

// Prompter asks the questions of an interactive session.
type Prompter interface {
	Select(message string, options []string) (string, error)
	Confirm(message string) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string) (string, error) {
	var answer string
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
		Description: func(_ string, index int) string {
			return fmt.Sprintf("#%d", index+1)
		},
	}
	err := survey.AskOne(prompt, &answer)

	return answer, err
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: message}, &answer)

	return answer, err
}

func newInteractiveCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Pick start and destination from a menu, repeatedly",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := input.LoadNetwork()
			if err != nil {
				return err
			}
			return runInteractive(cmd.OutOrStdout(), n, surveyPrompter{}, input.SearchOptions()...)
		},
	}
}

// runInteractive prints the banner, then loops: pick start, pick destination,
// print the route, ask whether to go again. Ctrl+C at any prompt ends the session.
func runInteractive(w io.Writer, n *campus.Network, p Prompter, opts ...dijkstra.Option) error {
	buildings := n.Buildings()
	fmt.Fprintln(w, render.Welcome)

	for {
		from, err := p.Select("Select your starting point:", buildings)
		if err != nil {
			return endSession(w, err)
		}
		to, err := p.Select("Select your destination point:", buildings)
		if err != nil {
			return endSession(w, err)
		}

		fmt.Fprintln(w)
		if err := render.Write(w, dijkstra.ShortestPath(n.Graph, from, to, opts...)); err != nil {
			return err
		}
		fmt.Fprintln(w)

		again, err := p.Confirm("Do you want to find another path?")
		if err != nil {
			return endSession(w, err)
		}
		if !again {
			return endSession(w, nil)
		}
	}
}

func endSession(w io.Writer, err error) error {
	if err != nil && !errors.Is(err, terminal.InterruptErr) {
		return err
	}
	fmt.Fprintln(w, render.Farewell)

	return nil
}
