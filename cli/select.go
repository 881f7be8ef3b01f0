package cli

import (
	"strings"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user for what the command line left out.
type Prompter interface {
	// Operation picks one of Operations.
	Operation() (string, error)

	// Files returns the input files. None means lines are read from stdin.
	Files() ([]string, error)
}

// TerminalPrompter prompts on the process terminal.
type TerminalPrompter struct{}

var _ Prompter = TerminalPrompter{}

func (TerminalPrompter) Operation() (string, error) {
	return SelectOperation("Operation")
}

func (TerminalPrompter) Files() ([]string, error) {
	return PromptFiles("Input files (empty to type lines, end with Ctrl-D)")
}

// SelectOperation asks the user to pick an operation on the terminal.
// Typing filters the list by prefix.
func SelectOperation(label string) (string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: Operations,
		Searcher: func(input string, index int) bool {
			return strings.HasPrefix(Operations[index], strings.ToLower(input))
		},
	}

	_, value, err := sel.Run()
	if err != nil {
		return "", err
	}

	return value, nil
}

// PromptFiles reads a whitespace separated list of file names. An empty
// answer is allowed.
func PromptFiles(label string) ([]string, error) {
	prompt := promptui.Prompt{
		Label: label,
	}

	txt, err := prompt.Run()
	if err != nil {
		return nil, err
	}

	return strings.Fields(txt), nil
}
