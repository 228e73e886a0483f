package commands

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type Command interface {
	// return the name of the command such as add
	Command() string
	// description, first line is the summary
	Description() string
	// Validate if the required args are present
	ValidateArgs(v *arg.Values) error
	// Execute the command
	Execute(v *arg.Values) error
}

var commandRegistry = make(map[string]Command)

func registerCommand(command Command) {
	commandRegistry[command.Command()] = command
}

func GetCommand(name string) (Command, bool) {
	cmd, ok := commandRegistry[name]
	return cmd, ok
}

func ListCommands() []string {
	keys := make([]string, 0, len(commandRegistry))
	for k := range commandRegistry {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Specs recognized by every command. The dispatcher is permissive about
// which command a flag appears on; unused flags are simply not consulted.
func optionSpecs() []arg.Spec {
	return []arg.Spec{
		{Long: "quiet", Short: "q"},
		{Long: "config", Short: "c", HasValue: true},
		{Long: "prefix", Short: "P", HasValue: true},
		{Long: "message", Short: "m", HasValue: true},
		{Long: "strategy", Short: "s", HasValue: true},
		{Long: "namespace", Short: "n", HasValue: true},
		{Long: "depth", HasValue: true},
		{Long: "all"},
		{Long: "pkg-name", HasValue: true},
		{Long: "pkg-revision", HasValue: true},
		{Long: "pkg-type", HasValue: true},
		{Long: "pkg-url", HasValue: true},
	}
}

// ParseOptions parses raw arguments against the shared option specs.
func ParseOptions(raw []string) (*arg.Values, error) {
	return arg.Parse(optionSpecs(), raw)
}

// invocationOptions maps parsed flags onto core overrides.
func invocationOptions(v *arg.Values) core.Options {
	depth := 0
	if d, ok := v.String("depth"); ok {
		if n, err := strconv.Atoi(d); err == nil {
			depth = n
		}
	}
	return core.Options{
		Prefix:    v.StringOr("prefix", ""),
		Revision:  v.StringOr("pkg-revision", ""),
		Type:      v.StringOr("pkg-type", ""),
		Strategy:  v.StringOr("strategy", ""),
		Namespace: v.StringOr("namespace", ""),
		Message:   v.StringOr("message", ""),
		Depth:     depth,
		Quiet:     v.Bool("quiet"),
		Prompt:    ttyPrompt{},
	}
}

// newContext builds the core context for the current working directory.
func newContext(v *arg.Values) (*core.Context, error) {
	if cfg, ok := v.String("config"); ok {
		os.Setenv("GIT_PKGS_JSON", cfg)
	}
	if v.Bool("quiet") {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current working directory: %w", err)
	}
	return core.NewContext(cwd, invocationOptions(v))
}

type CommandRunner struct{}

func (CommandRunner) Run(command Command, v *arg.Values) error {
	if err := command.ValidateArgs(v); err != nil {
		fmt.Fprintf(os.Stderr, "usage: git pkgs %s\n", command.Description())
		return err
	}
	return command.Execute(v)
}
