package dialog

import (
	"context"

	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 💬 Prompter asks the user for input
type Prompter interface {
	Select(ctx context.Context, title string, options []string) (string, error)
	Text(ctx context.Context, label, current string) (string, error)
}

// PtermPrompter prompts on the terminal
type PtermPrompter struct{}

var _ Prompter = PtermPrompter{}

func NewPtermPrompter() PtermPrompter {
	return PtermPrompter{}
}

func (PtermPrompter) Select(ctx context.Context, title string, options []string) (string, error) {
	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(title).
		Show()
	if err != nil {
		return "", errors.Errorf("select: %w", err)
	}
	return choice, nil
}

func (PtermPrompter) Text(ctx context.Context, label, current string) (string, error) {
	answer, err := pterm.DefaultInteractiveTextInput.
		WithDefaultValue(current).
		Show(label)
	if err != nil {
		return "", errors.Errorf("text input: %w", err)
	}
	return answer, nil
}
