package pkgs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// FetchRemote pulls the package namespace and the release tags from a
// remote. The working tree and branches are untouched.
func FetchRemote(c *Context, remote string) error {
	if remote == "" {
		remote = "origin"
	}
	log.Info().Msgf("fetching package refs from %s", remote)
	_, err := gitutil.Fetch(c.Dir, remote, []string{
		"+" + refs.Prefix + "/*:" + refs.Prefix + "/*",
		"+refs/tags/*:refs/tags/*",
	}, gitutil.FetchOpts{Force: true, NoTags: true})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}
	return nil
}

// PushRemote ships HEAD, the release tags and the whole package namespace.
func PushRemote(c *Context, remote string) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}
	if remote == "" {
		remote = "origin"
	}

	specs := []string{"HEAD", "+" + refs.Prefix + "/*:" + refs.Prefix + "/*"}
	releases, err := Releases(c)
	if err != nil {
		return err
	}
	for _, rev := range releases {
		specs = append(specs, "+refs/tags/"+rev+":refs/tags/"+rev)
	}

	log.Info().Msgf("pushing %s to %s", c.Root, remote)
	if err := gitutil.Push(c.Dir, remote, specs); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}
	return nil
}

// PushAll pushes to every configured remote.
func PushAll(c *Context) error {
	remotes, err := gitutil.Remotes(c.Dir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}
	if len(remotes) == 0 {
		return fmt.Errorf("%w: no remotes configured", ErrRemoteFailed)
	}
	for _, r := range remotes {
		if err := PushRemote(c, r); err != nil {
			return err
		}
	}
	return nil
}

// Pull fetches the package namespace, fast-forwards the current branch and
// brings the worktrees in line with the updated HEAD edges.
func Pull(c *Context, remote string) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}
	if remote == "" {
		remote = "origin"
	}
	if err := FetchRemote(c, remote); err != nil {
		return err
	}
	if _, err := gitutil.RunGit(c.Dir, "pull", "--ff-only", remote); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}
	return Rematerialize(c)
}

// CloneRepo clones url into dst and bootstraps it: the package name is
// recovered from the trailers of the cloned tip when the manifest does not
// carry one, the package namespace is fetched, and the HEAD edge set is
// materialized.
func CloneRepo(url, dst string, opts Options) error {
	if err := gitutil.Clone(url, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}

	c, err := NewContext(dst, opts)
	if err != nil {
		return err
	}

	if c.Root == "" {
		tip, err := gitutil.Resolve(c.Dir, "HEAD")
		if err == nil {
			if name := readProvenance(c.Dir, tip).Name; name != "" {
				if err := c.Manifest.Set("name", name); err != nil {
					return err
				}
				c.Root = name
				if err := c.SaveManifest(); err != nil {
					return err
				}
			}
		}
	}
	if err := c.RequireRoot(); err != nil {
		return err
	}

	if err := FetchRemote(c, "origin"); err != nil {
		return err
	}
	return Checkout(c, refs.Head)
}
