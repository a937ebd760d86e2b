package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Password prompts for a password without echoing input, re-asking while
// the entry is empty. An empty message defaults to "Password: ".
func Password(message string) (string, error) {
	if message == "" {
		message = "Password: "
	}

	for {
		fmt.Print(message)
		pw, err := readPassword()
		if err != nil {
			return "", err
		}
		if pw != "" {
			return pw, nil
		}
		fmt.Println("You did not specify a password")
	}
}

// NewPassword prompts for a new password twice, enforcing a minimum length
// and rejecting mismatched entries until both attempts agree.
func NewPassword(minLength int) (string, error) {
	for {
		fmt.Print("Desired Password: ")
		pw, err := readPassword()
		if err != nil {
			return "", err
		}
		if pw == "" {
			fmt.Println("You did not specify a password")
			continue
		}
		if len(pw) < minLength {
			fmt.Printf("Password must be at least %d characters, please try again.\n\n", minLength)
			continue
		}

		fmt.Print("Confirm Password: ")
		confirm, err := readPassword()
		if err != nil {
			return "", err
		}
		if pw != confirm {
			fmt.Print("Passwords do not match, please try again.\n\n")
			continue
		}
		return pw, nil
	}
}

// readPassword reads without echo on a terminal and falls back to a plain
// line read otherwise.
func readPassword() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("no password input")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
