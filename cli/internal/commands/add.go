package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type addCommand struct{}

func init() {
	registerCommand(addCommand{})
}

func (addCommand) Command() string {
	return "add"
}

func (addCommand) Description() string {
	return `add <pkg> [<rev>] [<url>]

Import a package as a direct dependency and resolve its transitive graph
against the current HEAD. The url may be omitted when the package was
imported before.

Options:
  -s, --strategy   conflict strategy (max|min|keep|update|interactive)
  -n, --namespace  record the edge inside a namespace
  --depth          shallow fetch depth (default 1)`
}

func (addCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 1 {
		if _, ok := v.String("pkg-name"); !ok {
			return fmt.Errorf("%w: package name required", core.ErrBadArgs)
		}
	}
	return nil
}

func (addCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}

	pkg := v.StringOr("pkg-name", "")
	rev := v.StringOr("pkg-revision", "")
	url := v.StringOr("pkg-url", "")
	if len(v.Args) > 0 {
		pkg = v.Args[0]
	}
	if len(v.Args) > 1 {
		rev = v.Args[1]
	}
	if len(v.Args) > 2 {
		url = v.Args[2]
	}

	return core.Add(ctx, pkg, rev, url)
}
