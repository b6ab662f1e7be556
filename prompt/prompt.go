package prompt

import (
	// Stdlib
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	// Vendor
	"github.com/bgentry/speakeasy"
	"golang.org/x/term"
)

var ErrCanceled = errors.New("operation canceled")

// Confirm asks the question on stdout and reads the answer from stdin.
func Confirm(question string) (bool, error) {
	return ConfirmWith(os.Stdin, os.Stdout, question)
}

// ConfirmWith keeps asking the question until the answer is y or n.
// An empty answer means no.
func ConfirmWith(in io.Reader, out io.Writer, question string) (bool, error) {
	printQuestion := func() {
		fmt.Fprint(out, question)
		fmt.Fprint(out, " [y/N]: ")
	}
	printQuestion()

	line := "n"
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line = strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch line {
		case "":
			line = "n"
		case "y", "n":
		default:
			printQuestion()
			continue
		}
		break
	}
	if err := scanner.Err(); err != nil {
		return false, err
	}

	return line == "y", nil
}

// IsInteractive returns true when stdin is a terminal.
// Character devices such as /dev/null do not count.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Password asks for a secret without echoing the input.
// ErrCanceled is returned when the answer is empty.
func Password(question string) (string, error) {
	answer, err := speakeasy.Ask(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", ErrCanceled
	}
	return answer, nil
}
