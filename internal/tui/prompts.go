package tui

import (
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

// ErrInteractiveDisabled is returned when interactive prompts are disabled via GITGUD_TEST_NO_INTERACTIVE
var ErrInteractiveDisabled = fmt.Errorf("interactive prompts are disabled (GITGUD_TEST_NO_INTERACTIVE is set)")

// checkInteractiveAllowed returns an error if interactive mode is disabled for testing
func checkInteractiveAllowed() error {
	if os.Getenv("GITGUD_TEST_NO_INTERACTIVE") != "" {
		return ErrInteractiveDisabled
	}
	return nil
}

// PromptConfirm prompts the user for yes/no confirmation
func PromptConfirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	confirmed := defaultValue
	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, fmt.Errorf("canceled")
	}
	return confirmed, nil
}

// SelectOption represents an option in a selection prompt
type SelectOption struct {
	Label string // What to show
	Value int    // Value to return
}

// PromptSelect prompts the user to select from a list of options
func PromptSelect(title string, options []SelectOption) (int, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return 0, err
	}

	if len(options) == 0 {
		return 0, fmt.Errorf("no options provided")
	}

	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}

	var index int
	prompt := &survey.Select{
		Message: title,
		Options: labels,
	}
	if err := survey.AskOne(prompt, &index); err != nil {
		return 0, fmt.Errorf("canceled")
	}
	return options[index].Value, nil
}
