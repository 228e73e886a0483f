package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/tui"
	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type treeCommand struct{}

func init() {
	registerCommand(treeCommand{})
}

func (treeCommand) Command() string {
	return "tree"
}

func (treeCommand) Description() string {
	return `tree [<rev>]

Print the dependency graph of the root package, at HEAD or at a release.
Packages appearing more than once are expanded only on first sight.`
}

func (treeCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (treeCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}

	rev := ""
	if len(v.Args) > 0 {
		rev = v.Args[0]
	}
	entries, err := core.Tree(ctx, rev)
	if err != nil {
		return err
	}
	fmt.Print(tui.RenderTree(entries))
	return nil
}
