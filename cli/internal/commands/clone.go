package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type cloneCommand struct{}

func init() {
	registerCommand(cloneCommand{})
}

func (cloneCommand) Command() string {
	return "clone"
}

func (cloneCommand) Description() string {
	return `clone <url> [<dir>]

Clone a packaged repository, recover its package name from the cloned tip
and check out its dependency worktrees. The only command that does not need
an existing working tree.`
}

func (cloneCommand) ValidateArgs(v *arg.Values) error {
	if len(v.Args) < 1 {
		return fmt.Errorf("%w: url required", core.ErrBadArgs)
	}
	return nil
}

func (cloneCommand) Execute(v *arg.Values) error {
	if v.Bool("quiet") {
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	}
	url := v.Args[0]
	dst := ""
	if len(v.Args) > 1 {
		dst = v.Args[1]
	}
	if dst == "" {
		dst = filepath.Base(strings.TrimSuffix(url, ".git"))
	}
	return core.Clone(url, dst, invocationOptions(v))
}
