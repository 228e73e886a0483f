package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/kuchuk-borom-debbarma/GitPkgs/cli/internal/util/arg"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

type jsonImportCommand struct{}

func init() {
	registerCommand(jsonImportCommand{})
}

func (jsonImportCommand) Command() string {
	return "json-import"
}

func (jsonImportCommand) Description() string {
	return `json-import [<file>]

Replay adds from an export document, read from a file or stdin.`
}

func (jsonImportCommand) ValidateArgs(v *arg.Values) error {
	return nil
}

func (jsonImportCommand) Execute(v *arg.Values) error {
	ctx, err := newContext(v)
	if err != nil {
		return err
	}

	var data []byte
	if len(v.Args) > 0 && v.Args[0] != "-" {
		data, err = os.ReadFile(v.Args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read import document: %w", err)
	}
	return core.Import(ctx, data)
}
