package pkgs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Release freezes the current HEAD dependency graph under a versioned
// namespace, commits the manifest, and tags the result so the snapshot can
// be pushed, fetched and checked out by name.
func Release(c *Context, rev string) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}
	if rev == "" || rev == refs.Head {
		return fmt.Errorf("%w: release needs a revision name", ErrBadArgs)
	}

	log.Info().Msgf("releasing %s@%s", c.Root, rev)

	// 1. The manifest records the released version and rides along in the
	// release commit.
	if err := c.Manifest.Set("version", rev); err != nil {
		return err
	}
	if err := c.SaveManifest(); err != nil {
		return err
	}
	if err := gitutil.Add(c.Dir, manifest.Filename()); err != nil {
		return err
	}

	// 2. Release commit with provenance trailers, then the tag.
	message := c.Message
	if message == "" {
		message = rev
	}
	sha, err := gitutil.Commit(c.Dir, message, true, Provenance{
		Name:     c.Root,
		Type:     c.Type,
		Revision: rev,
		URL:      c.OriginURL(),
	}.trailers())
	if err != nil {
		return err
	}
	if err := gitutil.Tag(c.Dir, rev, sha, true); err != nil {
		return err
	}

	// 3. Copy the HEAD namespace into the versioned one, pointwise.
	headPrefix := refs.RootHeadPrefix(c.Root)
	entries, err := gitutil.ForEachRef(c.Dir, headPrefix)
	if err != nil {
		return err
	}
	for _, e := range entries {
		rel, ok := refs.Rel(e.Ref, headPrefix)
		if !ok {
			continue
		}
		if err := gitutil.UpdateRef(c.Dir, refs.RootSnapshot(c.Root, rev, rel), e.SHA); err != nil {
			return err
		}
	}

	// 4. The root's own entry points at the release commit, orphanized like
	// any other package so consumers import it uniformly.
	selfRef := refs.RootSnapshot(c.Root, rev, c.Root)
	if err := gitutil.UpdateRef(c.Dir, selfRef, sha); err != nil {
		return err
	}
	orphan, err := Orphanize(c.Dir, selfRef, Provenance{
		Name:     c.Root,
		Type:     c.Type,
		Revision: rev,
		Commit:   sha,
		URL:      c.OriginURL(),
	})
	if err != nil {
		return err
	}
	return gitutil.UpdateRef(c.Dir, refs.RootHead(c.Root, "", c.Root), orphan)
}
