package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ttyPrompt implements the interactive conflict policy. Without a terminal
// it keeps the existing revision, so scripted runs never hang.
type ttyPrompt struct{}

func (ttyPrompt) Pick(pkg, existing, incoming string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return existing, nil
	}

	fmt.Fprintf(os.Stderr, "%s: keep %s or update to %s? [K/u] ", pkg, existing, incoming)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return existing, nil
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "u", "update":
		return incoming, nil
	}
	return existing, nil
}
