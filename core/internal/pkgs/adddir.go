package pkgs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// AddDir imports a plain local directory (an unpacked vendor tree, a package
// from another ecosystem) as pkg@rev without mutating the directory itself.
// Ecosystem importers can hand over the dependency structure they already
// know through PKGS_IMPORT_CONFIG_JSON, which is injected into the imported
// tree as a synthetic manifest.
//
// The fold installs only refs already present under refs/pkgs/<pkg>/<rev>/;
// the dependency entries of a synthetic manifest are not turned into refs, so
// callers register those edges there first.
func AddDir(c *Context, pkg, rev, localPath string) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}
	if rev == "" {
		rev = c.DefaultRev
	}

	abs, err := filepath.Abs(localPath)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrBadArgs, localPath)
	}

	var extra map[string][]byte
	if doc := os.Getenv("PKGS_IMPORT_CONFIG_JSON"); doc != "" {
		// Validate before injecting so a broken importer fails loudly.
		if _, err := manifest.Parse([]byte(doc)); err != nil {
			return fmt.Errorf("%w: PKGS_IMPORT_CONFIG_JSON: %v", ErrManifestInvalid, err)
		}
		extra = map[string][]byte{manifest.Filename(): []byte(doc)}
	}

	log.Info().Msgf("importing directory %s as %s@%s", localPath, pkg, rev)

	tree, err := gitutil.WriteTreeFromDir(c.Dir, abs, extra)
	if err != nil {
		return err
	}

	message := appendTrailers(fmt.Sprintf("import %s %s", pkg, rev), Provenance{
		Name:     pkg,
		Type:     c.Type,
		Revision: rev,
		Commit:   tree, // no origin commit exists; the tree is the identity
		URL:      abs,
	}.trailers())

	orphan, err := gitutil.CommitTree(c.Dir, tree, message)
	if err != nil {
		return err
	}

	selfRef := refs.PkgOrphan(pkg, rev)
	if err := gitutil.UpdateRef(c.Dir, selfRef, orphan); err != nil {
		return err
	}
	if err := gitutil.UpdateRef(c.Dir, refs.PkgHead(pkg), orphan); err != nil {
		return err
	}

	c.Manifest.AddDep(pkg, rev, c.Namespace)
	if err := c.foldTransitive(pkg, rev); err != nil {
		return err
	}
	return c.SaveManifest()
}
