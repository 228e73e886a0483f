package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type checkoutCommand struct{}

func init() {
	registerCommand(checkoutCommand{})
}

func (checkoutCommand) Command() string {
	return "checkout"
}

func (checkoutCommand) Description() string {
	return `checkout <rev>

Restore the working tree and the dependency edge set of a release.
"checkout HEAD" re-materializes the current edges without moving anything.`
}

func (checkoutCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 1 {
		return fmt.Errorf("%w: revision required", core.ErrBadArgs)
	}
	return nil
}

func (checkoutCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	return core.Checkout(ctx, v.Args[0])
}
