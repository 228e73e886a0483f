package pkgs

import (
	"errors"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

var (
	// ErrBadArgs signals a missing required argument or an unknown flag.
	ErrBadArgs = errors.New("bad arguments")

	// ErrNoPkgName signals that the root package name is unset. The user
	// has to run `config add name <name>` first.
	ErrNoPkgName = errors.New("package name is not configured, run: git pkgs config add name <name>")

	// ErrManifestInvalid signals a malformed manifest document.
	ErrManifestInvalid = manifest.ErrInvalid

	// ErrRefMissing signals that a ref that must exist is absent.
	ErrRefMissing = errors.New("ref not found")

	// ErrRemoteFailed signals a failed fetch, push or clone.
	ErrRemoteFailed = errors.New("remote operation failed")

	// ErrGitVersion signals that the underlying git is older than the
	// minimum. Fatal at startup.
	ErrGitVersion = gitutil.ErrVersion

	// ErrNotDirectDep signals remove of a package that was only pulled in
	// transitively.
	ErrNotDirectDep = errors.New("not a direct dependency")
)
