package ui

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// PromptYesNo prompts the user for a yes/no answer.
// In non-interactive mode the default answer is returned without asking.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.IsNonInteractive() {
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result, survey.WithStdio(os.Stdin, u.promptOutput(), os.Stderr))
	return result, err
}

// promptOutput is the terminal prompts are drawn on. Prompts follow the UI's
// writer so they never land on stdout next to results; survey needs a real
// file descriptor, so any other writer falls back to stderr.
func (u *UI) promptOutput() terminal.FileWriter {
	if fw, ok := u.Writer().(terminal.FileWriter); ok {
		return fw
	}
	return os.Stderr
}
