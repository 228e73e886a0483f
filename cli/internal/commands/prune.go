package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type pruneCommand struct{}

func init() {
	registerCommand(pruneCommand{})
}

func (pruneCommand) Command() string {
	return "prune"
}

func (pruneCommand) Description() string {
	return `prune

Delete refs in foreign package namespaces that no snapshot or HEAD edge
references anymore.`
}

func (pruneCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (pruneCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	n, err := core.Prune(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("pruned %d refs\n", n)
	return nil
}
