package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	weaveerrors "github.com/mrz1836/weave/internal/errors"
)

// runForm creates and runs a form with the given field. It handles common
// setup (theme, terminal guard) and error handling. The errorContext
// parameter is used to wrap errors with descriptive context.
func runForm(field huh.Field, errorContext string) error {
	// Prevent tests and piped invocations from hanging on a prompt.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return weaveerrors.ErrInteractiveRequired
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(field)).WithTheme(WeaveTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return weaveerrors.ErrOperationCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}
	return nil
}

// WeaveTheme returns a custom Huh theme using the colors from styles.go.
func WeaveTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(ColorPrimary)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)

	return t
}

// Input presents a single-line input prompt with optional validation.
// Returns ErrInteractiveRequired when no terminal is attached and
// ErrOperationCanceled when the user aborts.
func Input(prompt, defaultValue string, validate func(string) error) (string, error) {
	value := defaultValue

	field := huh.NewInput().
		Title(prompt).
		Value(&value)
	if validate != nil {
		field = field.Validate(validate)
	}

	if err := runForm(field, "input prompt failed"); err != nil {
		return "", err
	}
	return value, nil
}

// TextArea presents a multi-line text input prompt.
func TextArea(prompt, placeholder string) (string, error) {
	var value string

	field := huh.NewText().
		Title(prompt).
		Placeholder(placeholder).
		Value(&value)

	if err := runForm(field, "text area failed"); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm presents a yes/no prompt.
func Confirm(prompt string, defaultValue bool) (bool, error) {
	value := defaultValue

	field := huh.NewConfirm().
		Title(prompt).
		Value(&value)

	if err := runForm(field, "confirm prompt failed"); err != nil {
		return false, err
	}
	return value, nil
}
