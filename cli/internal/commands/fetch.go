package commands

import (
	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type fetchCommand struct{}

func init() {
	registerCommand(fetchCommand{})
}

func (fetchCommand) Command() string {
	return "fetch"
}

func (fetchCommand) Description() string {
	return `fetch [<remote>]

Fetch the package namespace and release tags from a remote (default origin).`
}

func (fetchCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (fetchCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	remote := ""
	if len(v.Args) > 0 {
		remote = v.Args[0]
	}
	return core.Fetch(ctx, remote)
}
