package pkgs

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/version"
)

// headPrefix is the destination namespace edges are folded into, honoring
// the invocation's namespace.
func (c *Context) headPrefix() string {
	p := refs.RootHeadPrefix(c.Root)
	if c.Namespace != "" {
		p += c.Namespace + "/"
	}
	return p
}

// foldTransitive merges every edge recorded under refs/pkgs/<pkg>/<rev>/*
// into the root's HEAD namespace. Each dependency is itself a resolved
// snapshot, so one level of folding is enough: the orphan carries the
// complete frozen graph it was released with.
func (c *Context) foldTransitive(pkg, rev string) error {
	src := refs.PkgSnapshotPrefix(pkg, rev) + "*"
	return c.fold([]string{"+" + src + ":" + c.headPrefix() + "*"})
}

// fold installs refspecs into HEAD via a local porcelain fetch and resolves
// each resulting update record in the order the ref-update stream produced
// them.
func (c *Context) fold(refspecs []string) error {
	updates, err := gitutil.FetchLocal(c.Dir, refspecs, gitutil.FetchOpts{Force: true, NoTags: true})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}
	for _, u := range updates {
		if err := c.installUpdate(u); err != nil {
			return err
		}
	}
	return nil
}

// installUpdate reconciles one moved HEAD edge against the strategy. The
// porcelain fetch has already pointed the edge at the incoming commit; the
// reconciliation either keeps it there, or reverts to the pre-existing one.
func (c *Context) installUpdate(u gitutil.Update) error {
	if u.Status == '-' || u.New == gitutil.ZeroSHA {
		return nil // pruned elsewhere
	}
	if u.Status == '!' {
		return fmt.Errorf("%w: could not update %s", ErrRemoteFailed, u.Ref)
	}

	// rel is relative to the root HEAD prefix, so it carries the full
	// namespace path even when the fold itself was namespaced.
	rel, ok := refs.Rel(u.Ref, refs.RootHeadPrefix(c.Root))
	if !ok {
		return nil
	}

	incoming := readProvenance(c.Dir, u.New)
	name := incoming.Name
	if name == "" {
		name = rel
	}

	// Self-reference: a dependency graph may mention the root package
	// itself (cycles). The root never depends on itself.
	if name == c.Root {
		c.revertUpdate(u)
		return nil
	}

	edgeNs, _ := refs.SplitEdge(rel, name)

	var existing string
	if !u.Created() {
		existing = readProvenance(c.Dir, u.Old).Revision
	}

	chosen, err := c.pickRevision(name, existing, incoming.Revision)
	if err != nil {
		return err
	}

	if existing != "" && chosen == existing {
		if u.Old != u.New {
			if existing == incoming.Revision {
				log.Warn().Msgf("%s@%s: equal revisions with different commits, keeping existing", name, existing)
			}
			if err := gitutil.UpdateRef(c.Dir, u.Ref, u.Old); err != nil {
				return err
			}
		}
		log.Info().Msgf("[keep] %s@%s", name, existing)
		return nil
	}

	if u.Created() {
		log.Info().Msgf("[add] %s@%s", name, incoming.Revision)
	} else {
		log.Info().Msgf("[update] %s@%s -> %s", name, existing, incoming.Revision)
	}
	return c.materialize(edgeNs, name, u.New)
}

// revertUpdate restores an edge the porcelain fetch moved.
func (c *Context) revertUpdate(u gitutil.Update) {
	var err error
	if u.Created() {
		err = gitutil.DeleteRef(c.Dir, u.Ref)
	} else if u.Old != u.New {
		err = gitutil.UpdateRef(c.Dir, u.Ref, u.Old)
	}
	if err != nil {
		log.Warn().Err(err).Msgf("failed to revert %s", u.Ref)
	}
}

// pickRevision applies the conflict strategy to two candidate revisions of
// pkg. existing may be empty when the edge is new.
func (c *Context) pickRevision(pkg, existing, incoming string) (string, error) {
	if existing == "" {
		return incoming, nil
	}
	if incoming == "" || existing == incoming {
		return existing, nil
	}
	switch c.Strategy {
	case StrategyMax:
		return version.Max(existing, incoming), nil
	case StrategyMin:
		return version.Min(existing, incoming), nil
	case StrategyKeep:
		return existing, nil
	case StrategyUpdate:
		return incoming, nil
	case StrategyInteractive:
		if c.Prompt == nil {
			return existing, nil
		}
		return c.Prompt.Pick(pkg, existing, incoming)
	}
	return "", fmt.Errorf("%w: unknown strategy %q", ErrBadArgs, c.Strategy)
}

func joinNs(ns string) string {
	if ns == "" {
		return ""
	}
	return "/" + ns
}

// headEdgeName resolves the package name of a HEAD edge ref from its
// trailers, falling back to the ref path.
func (c *Context) headEdgeName(ref, sha string) (name, ns string) {
	rel, ok := refs.Rel(ref, refs.RootHeadPrefix(c.Root))
	if !ok {
		return "", ""
	}
	prov := readProvenance(c.Dir, sha)
	name = prov.Name
	if name == "" {
		name = rel
	}
	ns, name = refs.SplitEdge(rel, name)
	return name, ns
}
