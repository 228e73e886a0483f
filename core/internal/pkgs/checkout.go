package pkgs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Checkout restores the working tree and the HEAD edge set of a release.
// `checkout HEAD` re-materializes the current edge set without moving
// anything.
func Checkout(c *Context, rev string) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}
	if rev == "" {
		rev = refs.Head
	}

	if rev != refs.Head {
		snapPrefix := refs.RootSnapshotPrefix(c.Root, rev)
		snap, err := gitutil.ForEachRef(c.Dir, snapPrefix)
		if err != nil {
			return err
		}
		if len(snap) == 0 {
			return fmt.Errorf("%w: no release %s under %s", ErrRefMissing, rev, snapPrefix)
		}

		// The project tree itself moves to the release tag. Force, because
		// adds since the last release leave the manifest modified and a
		// checkout must win over it.
		if err := gitutil.CheckoutForce(c.Dir, rev); err != nil {
			return err
		}

		// Tear down the current HEAD namespace, worktrees first.
		headPrefix := refs.RootHeadPrefix(c.Root)
		current, err := gitutil.ForEachRef(c.Dir, headPrefix)
		if err != nil {
			return err
		}
		for _, e := range current {
			name, ns := c.headEdgeName(e.Ref, e.SHA)
			if name != "" && name != c.Root {
				c.dematerialize(ns, name)
			}
			if err := gitutil.DeleteRef(c.Dir, e.Ref); err != nil {
				return err
			}
		}

		// Copy the frozen namespace back to HEAD.
		if _, err := gitutil.FetchLocal(c.Dir,
			[]string{"+" + snapPrefix + "*:" + headPrefix + "*"},
			gitutil.FetchOpts{Force: true, NoTags: true, Prune: true}); err != nil {
			return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
		}

		// The manifest changed with the project tree; reload it.
		m, err := manifest.Load(c.ManifestPath)
		if err != nil {
			return err
		}
		c.Manifest = m
		log.Info().Msgf("checked out %s@%s", c.Root, rev)
	}

	return Rematerialize(c)
}

// Rematerialize walks the HEAD namespace and checks out a worktree for
// every edge, reusing routing as configured by the (possibly just replaced)
// manifest.
func Rematerialize(c *Context) error {
	headPrefix := refs.RootHeadPrefix(c.Root)
	entries, err := gitutil.ForEachRef(c.Dir, headPrefix)
	if err != nil {
		return err
	}
	for _, e := range entries {
		name, ns := c.headEdgeName(e.Ref, e.SHA)
		if name == "" || name == c.Root {
			continue
		}
		if err := c.materialize(ns, name, e.SHA); err != nil {
			return err
		}
	}
	return nil
}
