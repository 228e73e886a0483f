package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type addDirCommand struct{}

func init() {
	registerCommand(addDirCommand{})
}

func (addDirCommand) Command() string {
	return "add-dir"
}

func (addDirCommand) Description() string {
	return `add-dir <pkg> <rev> <path>

Import a plain local directory as a package without mutating it. Ecosystem
importers may inject a synthetic manifest via PKGS_IMPORT_CONFIG_JSON.`
}

func (addDirCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 3 {
		return fmt.Errorf("%w: add-dir needs <pkg> <rev> <path>", core.ErrBadArgs)
	}
	return nil
}

func (addDirCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	return core.AddDir(ctx, v.Args[0], v.Args[1], v.Args[2])
}
