package pkgs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Remove drops a direct dependency and every HEAD edge its snapshot
// announced, then re-resolves those edges from the remaining direct
// dependencies so shared transitive packages survive.
func Remove(c *Context, pkg string) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}

	headRef := refs.RootHead(c.Root, c.Namespace, pkg)
	headSHA, err := gitutil.Resolve(c.Dir, headRef)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRefMissing, headRef)
	}

	// Direct means the package was imported as a root: some orphan in its
	// own namespace names the very commit the HEAD edge does.
	if !isDirect(c, pkg, headSHA) {
		return fmt.Errorf("%w: %s was pulled in transitively, remove its parent instead", ErrNotDirectDep, pkg)
	}

	rev := readProvenance(c.Dir, headSHA).Revision
	log.Info().Msgf("removing %s@%s", pkg, rev)

	// 1. Tear down every HEAD edge this package's snapshot announced.
	// src is the edge path as snapshots record it; dst is where the fold
	// installed it, which additionally carries the invocation namespace.
	type droppedEdge struct {
		src, dst string
	}
	var dropped []droppedEdge
	entries, err := gitutil.ForEachRef(c.Dir, refs.PkgSnapshotPrefix(pkg, rev))
	if err != nil {
		return err
	}
	for _, e := range entries {
		rel, ok := refs.Rel(e.Ref, refs.PkgSnapshotPrefix(pkg, rev))
		if !ok || rel == c.Root {
			continue
		}
		name := readProvenance(c.Dir, e.SHA).Name
		if name == "" {
			name = rel
		}
		ns, _ := refs.SplitEdge(rel, name)
		if c.Namespace != "" {
			ns = c.Namespace + joinNs(ns)
		}

		dst := refs.Edge(ns, name)
		edge := refs.RootHeadPrefix(c.Root) + dst
		if !gitutil.RefExists(c.Dir, edge) {
			continue
		}
		c.dematerialize(ns, name)
		if err := gitutil.DeleteRef(c.Dir, edge); err != nil {
			return err
		}
		log.Info().Msgf("[remove] %s", name)
		if name != pkg {
			dropped = append(dropped, droppedEdge{src: rel, dst: dst})
		}
	}

	// 2. The direct edge leaves the manifest.
	c.Manifest.RemoveDep(pkg, c.Namespace)

	// 3. Any dropped edge that another direct dependency still declares is
	// restored through the normal conflict resolution.
	for _, d := range dropped {
		if err := restoreFromParents(c, d.src, d.dst); err != nil {
			return err
		}
	}

	return c.SaveManifest()
}

// isDirect reports whether sha appears as an orphan inside pkg's own
// namespace, i.e. the package was imported as a root.
func isDirect(c *Context, pkg, sha string) bool {
	entries, err := gitutil.ForEachRef(c.Dir, refs.PkgPrefix(pkg))
	if err != nil {
		return false
	}
	for _, e := range entries {
		rev, ok := refs.SnapshotOf(e.Ref, pkg)
		if !ok || e.Ref != refs.PkgOrphan(pkg, rev) {
			continue
		}
		if e.SHA == sha {
			return true
		}
	}
	return false
}

// restoreFromParents walks the remaining direct dependencies and re-installs
// an edge from every parent that still declares it, letting the strategy
// reconcile competing revisions.
func restoreFromParents(c *Context, src, dst string) error {
	for _, key := range c.Manifest.DepKeys() {
		pns, pname := manifest.SplitDepKey(key)

		parentEdge := refs.RootHead(c.Root, pns, pname)
		sha, err := gitutil.Resolve(c.Dir, parentEdge)
		if err != nil {
			continue
		}
		prev := readProvenance(c.Dir, sha).Revision

		candidate := refs.PkgSnapshotPrefix(pname, prev) + src
		if !gitutil.RefExists(c.Dir, candidate) {
			continue
		}
		refspec := "+" + candidate + ":" + refs.RootHeadPrefix(c.Root) + dst
		if err := c.fold([]string{refspec}); err != nil {
			return err
		}
	}
	return nil
}
