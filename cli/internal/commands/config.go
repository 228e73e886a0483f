package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type configCommand struct{}

func init() {
	registerCommand(configCommand{})
}

func (configCommand) Command() string {
	return "config"
}

func (configCommand) Description() string {
	return `config add <key> <value> | config get <key> | config rm <key>

Manage manifest values by dotted path. "config add name <pkg>" is how a
repository enters the system; it creates the manifest implicitly.`
}

func (configCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 2 {
		return fmt.Errorf("%w: config needs a subcommand and a key", core.ErrBadArgs)
	}
	switch v.Args[0] {
	case "add":
		if len(v.Args) < 3 {
			return fmt.Errorf("%w: config add needs <key> <value>", core.ErrBadArgs)
		}
	case "get", "rm":
	default:
		return fmt.Errorf("%w: unknown config subcommand %q", core.ErrBadArgs, v.Args[0])
	}
	return nil
}

func (configCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}

	switch v.Args[0] {
	case "add":
		return core.ConfigAdd(ctx, v.Args[1], v.Args[2])
	case "get":
		value, err := core.ConfigGet(ctx, v.Args[1])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	case "rm":
		return core.ConfigRm(ctx, v.Args[1])
	}
	return nil
}
