package pkgs

import (
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// TreeEntry is one node of the dependency traversal, keyed by its ancestry
// so a downstream formatter can indent it without re-walking the graph.
type TreeEntry struct {
	Ancestry []string // package names from the root down to the parent
	Name     string
	Revision string
	Deduped  bool // the package already appeared elsewhere in the traversal
}

// Key renders the ancestry-keyed line for this entry, ":"-separated.
func (e TreeEntry) Key() string {
	out := ""
	for _, a := range e.Ancestry {
		out += a + ":"
	}
	return out + e.Name
}

// Tree walks the dependency graph of the root package at rev breadth-first.
// Children are read from each node's manifest blob inside its orphan commit;
// a package is expanded only once across the whole traversal, reappearances
// are annotated instead of recursed into.
func Tree(c *Context, rev string) ([]TreeEntry, error) {
	if err := c.RequireRoot(); err != nil {
		return nil, err
	}
	if rev == "" {
		rev = refs.Head
	}

	type node struct {
		name, rev string
		ancestry  []string
	}
	queue := []node{{name: c.Root, rev: rev}}
	visited := map[string]bool{}
	var entries []TreeEntry

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		deduped := visited[n.name]
		entries = append(entries, TreeEntry{
			Ancestry: n.ancestry,
			Name:     n.name,
			Revision: n.rev,
			Deduped:  deduped,
		})
		if deduped {
			continue
		}
		visited[n.name] = true

		m := nodeManifest(c, n.name, n.rev)
		ancestry := append(append([]string{}, n.ancestry...), n.name)
		for _, key := range m.DepKeys() {
			_, child := manifest.SplitDepKey(key)
			childRev, _ := m.Rev(child, firstNs(key))
			queue = append(queue, node{name: child, rev: childRev, ancestry: ancestry})
		}
	}
	return entries, nil
}

func firstNs(key string) string {
	ns, _ := manifest.SplitDepKey(key)
	return ns
}

// nodeManifest reads the manifest of a package at a revision. The root at
// HEAD reads the working tree; everything else reads the manifest blob out
// of the orphan commit. Nodes without a manifest get an empty one.
func nodeManifest(c *Context, name, rev string) *manifest.Manifest {
	if name == c.Root && rev == refs.Head {
		return c.Manifest
	}
	blob, ok := gitutil.ShowBlob(c.Dir, refs.PkgOrphan(name, rev), manifest.Filename())
	if !ok {
		return manifest.New()
	}
	m, err := manifest.Parse([]byte(blob))
	if err != nil {
		return manifest.New()
	}
	return m
}
