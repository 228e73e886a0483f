package commands

import (
	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type pullCommand struct{}

func init() {
	registerCommand(pullCommand{})
}

func (pullCommand) Command() string {
	return "pull"
}

func (pullCommand) Description() string {
	return `pull [<remote>]

Fetch the package namespace, fast-forward the current branch and bring the
dependency worktrees in line.`
}

func (pullCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (pullCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	remote := ""
	if len(v.Args) > 0 {
		remote = v.Args[0]
	}
	return core.Pull(ctx, remote)
}
