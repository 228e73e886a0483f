package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type releaseCommand struct{}

func init() {
	registerCommand(releaseCommand{})
}

func (releaseCommand) Command() string {
	return "release"
}

func (releaseCommand) Description() string {
	return `release <rev>

Freeze the current dependency graph as a named snapshot, commit the
manifest and tag the result.

Options:
  -m, --message  release commit message (defaults to <rev>)`
}

func (releaseCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 1 {
		return fmt.Errorf("%w: release revision required", core.ErrBadArgs)
	}
	return nil
}

func (releaseCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	return core.Release(ctx, v.Args[0])
}
