package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type lsReleasesCommand struct{}

func init() {
	registerCommand(lsReleasesCommand{})
}

func (lsReleasesCommand) Command() string {
	return "ls-releases"
}

func (lsReleasesCommand) Description() string {
	return `ls-releases

List recorded release snapshots, version-sorted.`
}

func (lsReleasesCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (lsReleasesCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	releases, err := core.Releases(ctx)
	if err != nil {
		return err
	}
	for _, rev := range releases {
		fmt.Println(rev)
	}
	return nil
}
