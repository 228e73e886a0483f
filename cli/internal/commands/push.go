package commands

import (
	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type pushCommand struct{}

func init() {
	registerCommand(pushCommand{})
}

func (pushCommand) Command() string {
	return "push"
}

func (pushCommand) Description() string {
	return `push [<remote>]

Ship HEAD, the release tags and everything under refs/pkgs/* to a remote
(default origin).

Options:
  --all  push to every configured remote`
}

func (pushCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (pushCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	if v.Bool("all") {
		return core.PushAll(ctx)
	}
	remote := ""
	if len(v.Args) > 0 {
		remote = v.Args[0]
	}
	return core.Push(ctx, remote)
}
