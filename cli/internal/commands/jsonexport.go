package commands

import (
	"fmt"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type jsonExportCommand struct{}

func init() {
	registerCommand(jsonExportCommand{})
}

func (jsonExportCommand) Command() string {
	return "json-export"
}

func (jsonExportCommand) Description() string {
	return `json-export

Print the active dependency graph as a JSON document suitable for
json-import on another repository.`
}

func (jsonExportCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (jsonExportCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}
	data, err := core.Export(ctx)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
