package pkgs

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Prune deletes refs in foreign package namespaces whose commits are no
// longer referenced by any snapshot or HEAD edge of the root. Orphan commits
// themselves are left to git's own gc once unreachable.
func Prune(c *Context) (int, error) {
	if err := c.RequireRoot(); err != nil {
		return 0, err
	}

	rootPrefix := refs.PkgPrefix(c.Root)
	rooted, err := gitutil.ForEachRef(c.Dir, rootPrefix)
	if err != nil {
		return 0, err
	}
	referenced := make(map[string]bool, len(rooted))
	for _, e := range rooted {
		referenced[e.SHA] = true
	}

	all, err := gitutil.ForEachRef(c.Dir, refs.Prefix+"/")
	if err != nil {
		return 0, err
	}
	pruned := 0
	for _, e := range all {
		if strings.HasPrefix(e.Ref, rootPrefix) || referenced[e.SHA] {
			continue
		}
		if err := gitutil.DeleteRef(c.Dir, e.Ref); err != nil {
			return pruned, err
		}
		log.Info().Msgf("[prune] %s", e.Ref)
		pruned++
	}
	return pruned, nil
}
