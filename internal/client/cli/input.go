package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var errEmptyAnswer = errors.New("no value entered")

// Terminal access, replaced in tests.
var (
	readPassword = term.ReadPassword
	stdinFd      = func() int { return int(os.Stdin.Fd()) }
)

// Prompt helpers used by the account commands, replaced in tests.
var (
	askLine     = promptLine
	askPassword = promptPassword
)

// promptLine writes "label: " and returns the trimmed answer. A final line
// without a newline is accepted. Blank answers are rejected with errEmptyAnswer.
func promptLine(r *bufio.Reader, w io.Writer, label string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return "", err
	}
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	answer := strings.TrimSpace(line)
	if answer == "" {
		return "", errEmptyAnswer
	}
	return answer, nil
}

// promptPassword reads a password from stdin with echo off. The caller owns
// the returned buffer.
func promptPassword(w io.Writer, label string) ([]byte, error) {
	if _, err := fmt.Fprintf(w, "%s: ", label); err != nil {
		return nil, err
	}
	pw, err := readPassword(stdinFd())
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if len(pw) == 0 {
		return nil, errEmptyAnswer
	}
	return pw, nil
}
