// Package input contains terminal input helpers for CLI commands.
package input

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal is a wrapper around stdin for tests to be able to redirect it. If
// it's not nil, it's used instead of the real terminal.
var Terminal *bufio.Reader

// ReadLine reads a line from the terminal printing the given prompt first.
func ReadLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := Terminal
	if reader == nil {
		reader = bufio.NewReader(os.Stdin)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadPassword reads a password from the terminal without echoing it.
func ReadPassword(prompt string) (string, error) {
	if Terminal != nil {
		return ReadLine(prompt)
	}
	fmt.Print(prompt)
	rawPass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(rawPass), "\n"), nil
}
