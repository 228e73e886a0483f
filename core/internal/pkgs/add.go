package pkgs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Add imports pkg at rev from url as a direct dependency and reconciles the
// transitive graph it announces against the current HEAD.
//
// Re-running the same add is a no-op: the namespace fetch finds nothing new,
// orphanization is skipped when the ref already points at a revision-matching
// orphan, and the fold produces no update records.
func Add(c *Context, pkg, rev, url string) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}
	if pkg == c.Root {
		return fmt.Errorf("%w: %s is the root package", ErrBadArgs, pkg)
	}
	if rev == "" {
		rev = c.DefaultRev
	}
	if url == "" {
		url = knownURL(c, pkg)
	}
	if url == "" {
		return fmt.Errorf("%w: no url known for %s, pass one explicitly", ErrBadArgs, pkg)
	}

	log.Info().Msgf("adding %s@%s from %s", pkg, rev, url)

	// 1. Pull in the package's published namespace for this revision: its
	// orphan plus the transitive edges frozen at its release.
	namespace := refs.PkgSnapshotPrefix(pkg, rev) + "*"
	if _, err := gitutil.Fetch(c.Dir, url, []string{"+" + namespace + ":" + namespace},
		gitutil.FetchOpts{Force: true, NoTags: true}); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}

	// 2. Repositories that never released through this tool have no
	// namespace to offer; import the bare revision and orphanize it.
	selfRef := refs.PkgOrphan(pkg, rev)
	sha, err := ensureOrphan(c, selfRef, pkg, rev, url)
	if err != nil {
		return err
	}

	// 3. The direct edge is recorded in the manifest.
	c.Manifest.AddDep(pkg, rev, c.Namespace)

	// 4. Most-recently-imported pointer.
	if err := gitutil.UpdateRef(c.Dir, refs.PkgHead(pkg), sha); err != nil {
		return err
	}

	// 5. Fold the announced graph (the package's own edge included) into
	// HEAD, materializing worktrees as edges settle.
	if err := c.foldTransitive(pkg, rev); err != nil {
		return err
	}

	return c.SaveManifest()
}

// ensureOrphan guarantees that selfRef names a provenance-carrying orphan
// for (pkg, rev), shallow-fetching the revision from url when the published
// namespace did not provide one.
func ensureOrphan(c *Context, selfRef, pkg, rev, url string) (string, error) {
	if gitutil.RefExists(c.Dir, selfRef) {
		sha, err := gitutil.Resolve(c.Dir, selfRef)
		if err == nil {
			if prov := readProvenance(c.Dir, sha); prov.Revision == rev && prov.Name == pkg {
				return sha, nil
			}
		}
	}

	log.Info().Msgf("importing %s@%s (shallow)", pkg, rev)
	if _, err := gitutil.Fetch(c.Dir, url, []string{"+" + rev + ":" + selfRef},
		gitutil.FetchOpts{Depth: c.Depth, Force: true, NoTags: true}); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}

	origin, err := gitutil.Resolve(c.Dir, selfRef)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRefMissing, selfRef)
	}
	return Orphanize(c.Dir, selfRef, Provenance{
		Name:     pkg,
		Type:     c.Type,
		Revision: rev,
		Commit:   origin,
		URL:      url,
	})
}

// knownURL recovers the origin url of a previously imported package from the
// trailers of any orphan in its namespace.
func knownURL(c *Context, pkg string) string {
	entries, err := gitutil.ForEachRef(c.Dir, refs.PkgPrefix(pkg))
	if err != nil {
		return ""
	}
	for _, e := range entries {
		rev, ok := refs.SnapshotOf(e.Ref, pkg)
		if !ok || e.Ref != refs.PkgOrphan(pkg, rev) {
			continue
		}
		if prov := readProvenance(c.Dir, e.SHA); prov.URL != "" {
			return prov.URL
		}
	}
	return ""
}
