package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// Option is one selectable entry for Choose: the key the user types in
// plain-text mode and a human-readable label.
type Option struct {
	Key   string
	Label string
}

// Confirm asks a yes/no question. Interactive terminals get a Huh form;
// otherwise the answer is read line by line from stdin, re-asking until a
// y or n arrives.
func Confirm(message string) (bool, error) {
	if !IsTerminal(os.Stdin) {
		return ConfirmReader(os.Stdin, os.Stdout, message)
	}

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Value(&confirmed),
		),
	)
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("confirm prompt failed: %w", err)
	}
	return confirmed, nil
}

// ConfirmReader is the plain-text confirm loop for non-terminal input.
func ConfirmReader(r io.Reader, w io.Writer, message string) (bool, error) {
	fmt.Fprintf(w, "%s (y/n): ", message)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		}
		fmt.Fprint(w, "Invalid option, please try again. Enter (y/n): ")
	}
	if err := scanner.Err(); err != nil {
		return false, err
	}
	return false, fmt.Errorf("no confirmation received")
}

// Input prompts for a line of text, returning defaultValue when the user
// submits nothing.
func Input(message, defaultValue string) (string, error) {
	if !IsTerminal(os.Stdin) {
		return InputReader(os.Stdin, os.Stdout, message, defaultValue)
	}

	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(message).
				Placeholder(defaultValue).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("input prompt failed: %w", err)
	}
	if strings.TrimSpace(value) == "" {
		return defaultValue, nil
	}
	return value, nil
}

// InputReader is the plain-text input path for non-terminal input.
func InputReader(r io.Reader, w io.Writer, message, defaultValue string) (string, error) {
	fmt.Fprint(w, message)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return defaultValue, nil
	}
	input := strings.TrimSpace(scanner.Text())
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

// Choose presents options and returns the chosen key. Interactive terminals
// get a Huh select; otherwise keys are read from stdin until a valid one
// arrives.
func Choose(message string, options []Option) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options to choose from")
	}
	if !IsTerminal(os.Stdin) {
		return ChooseReader(os.Stdin, os.Stdout, message, options)
	}

	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Key)
	}

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(message).
				Options(opts...).
				Value(&choice),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("select prompt failed: %w", err)
	}
	return choice, nil
}

// ChooseReader is the plain-text option loop for non-terminal input.
func ChooseReader(r io.Reader, w io.Writer, message string, options []Option) (string, error) {
	fmt.Fprintf(w, "%s\n\n", message)
	valid := map[string]bool{}
	for _, o := range options {
		valid[o.Key] = true
		fmt.Fprintf(w, "    [%s] %s\n", o.Key, o.Label)
	}
	fmt.Fprint(w, "\nSelect One: ")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if valid[key] {
			return key, nil
		}
		fmt.Fprint(w, "\nInvalid option, try again: ")
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no option selected")
}
