package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/tui"
	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type statusCommand struct{}

func init() {
	registerCommand(statusCommand{})
}

func (statusCommand) Command() string {
	return "status"
}

func (statusCommand) Description() string {
	return `status

List the active dependency edges: package, revision, kind and worktree
location.`
}

func (statusCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (statusCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	edges, err := core.Status(ctx)
	if err != nil {
		return err
	}
	fmt.Print(tui.RenderStatus(edges))
	return nil
}
