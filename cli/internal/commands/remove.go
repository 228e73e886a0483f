package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type removeCommand struct{}

func init() {
	registerCommand(removeCommand{})
}

func (removeCommand) Command() string {
	return "remove"
}

func (removeCommand) Description() string {
	return `remove <pkg>

Drop a direct dependency. Transitive packages still needed by other direct
dependencies are restored from those parents.`
}

func (removeCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 1 {
		return fmt.Errorf("%w: package name required", core.ErrBadArgs)
	}
	return nil
}

func (removeCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	return core.Remove(ctx, v.Args[0])
}
