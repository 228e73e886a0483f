package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/commands"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

func main() {
	setupLogging()

	if len(os.Args) < 2 {
		printUsage()
		return
	}

	if err := core.CheckGitVersion(); err != nil {
		fatal(err)
	}

	commandName := os.Args[1]
	command, ok := commands.GetCommand(commandName)
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", commandName)
		printUsage()
		os.Exit(1)
	}

	values, err := commands.ParseOptions(os.Args[2:])
	if err != nil {
		fatal(err)
	}

	runner := commands.CommandRunner{}
	if err := runner.Run(command, values); err != nil {
		fatal(err)
	}
}

func setupLogging() {
	out := colorable.NewColorable(os.Stderr)
	noColor := !isatty.IsTerminal(os.Stderr.Fd())
	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("Usage: git pkgs <command> [args]")
	fmt.Println("\nAvailable commands:")
	for _, cmdName := range commands.ListCommands() {
		cmd, _ := commands.GetCommand(cmdName)
		summary, _, _ := strings.Cut(cmd.Description(), "\n")
		fmt.Printf("  %-12s %s\n", cmdName, summary)
	}
}
