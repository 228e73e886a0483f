package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/tui"
	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type showCommand struct{}

func init() {
	registerCommand(showCommand{})
}

func (showCommand) Command() string {
	return "show"
}

func (showCommand) Description() string {
	return `show <pkg>

Print the provenance of an active package: revision, origin commit, url
and worktree location.`
}

func (showCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 1 {
		return fmt.Errorf("%w: package name required", core.ErrBadArgs)
	}
	return nil
}

func (showCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	detail, err := core.Show(ctx, v.Args[0])
	if err != nil {
		return err
	}
	fmt.Print(tui.RenderDetail(detail))
	return nil
}
