package promptutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

type Prompter interface {
	PromptForConfirmation(prompt string) (bool, error)
}

type RealPrompter struct{}

var ErrInterrupted = errors.New("operation interrupted")

func (p *RealPrompter) HandlePromptError(err error) error {
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			fmt.Println("\nReceived termination signal. Exiting.")
			return ErrInterrupted
		}
		return fmt.Errorf("failed to read the answer: %w", err)
	}
	return nil
}

func (p *RealPrompter) PromptForConfirmation(prompt string) (bool, error) {
	promptInstance := promptui.Prompt{
		Label:     prompt,
		IsConfirm: true,
	}
	result, err := promptInstance.Run()
	if errors.Is(err, promptui.ErrAbort) {
		// An explicit "no" answer.
		return false, nil
	}
	if err = p.HandlePromptError(err); err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(result), "y"), nil
}

func NewPrompt() Prompter {
	return &RealPrompter{}
}
