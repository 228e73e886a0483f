package pkgs

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/file"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// materialize places (or replaces) the worktree for an edge. A routing rule
// mapped to "false" records the ref without a working copy.
func (c *Context) materialize(ns, pkg, sha string) error {
	rel, ok := c.Router().Route(ns, pkg)
	if !ok {
		log.Debug().Msgf("routing suppresses checkout of %s", pkg)
		return nil
	}

	abs := filepath.Join(c.Dir, rel)
	c.dropWorktree(abs)
	if err := file.CreateDir(filepath.Dir(abs)); err != nil {
		return err
	}
	return gitutil.WorktreeAdd(c.Dir, abs, sha, false)
}

// dematerialize removes the worktree of an edge, if it has one.
func (c *Context) dematerialize(ns, pkg string) {
	rel, ok := c.Router().Route(ns, pkg)
	if !ok {
		return
	}
	c.dropWorktree(filepath.Join(c.Dir, rel))
}

// dropWorktree detaches and deletes whatever sits at abs. Leftover plain
// directories (e.g. from an interrupted run) are removed too.
func (c *Context) dropWorktree(abs string) {
	if !file.Exists(abs) {
		return
	}
	if err := gitutil.WorktreeRemove(c.Dir, abs, true); err != nil {
		log.Debug().Err(err).Msgf("worktree remove %s", abs)
	}
	if file.Exists(abs) {
		if err := os.RemoveAll(abs); err != nil {
			log.Warn().Err(err).Msgf("failed to clear %s", abs)
		}
	}
	if err := gitutil.WorktreePrune(c.Dir); err != nil {
		log.Debug().Err(err).Msg("worktree prune")
	}
}
