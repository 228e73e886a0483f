package pkgs

import (
	"fmt"
	"sort"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/version"
)

// Edge describes one active dependency edge of HEAD.
type Edge struct {
	Name      string
	Namespace string
	Revision  string
	SHA       string
	Path      string // empty when routing suppresses checkout
	Direct    bool
}

// Status lists the active HEAD edges, the root's own entry excluded.
func Status(c *Context) ([]Edge, error) {
	if err := c.RequireRoot(); err != nil {
		return nil, err
	}

	entries, err := gitutil.ForEachRef(c.Dir, refs.RootHeadPrefix(c.Root))
	if err != nil {
		return nil, err
	}

	var edges []Edge
	for _, e := range entries {
		name, ns := c.headEdgeName(e.Ref, e.SHA)
		if name == "" || name == c.Root {
			continue
		}
		path, ok := c.Router().Route(ns, name)
		if !ok {
			path = ""
		}
		_, direct := c.Manifest.Rev(name, ns)
		edges = append(edges, Edge{
			Name:      name,
			Namespace: ns,
			Revision:  readProvenance(c.Dir, e.SHA).Revision,
			SHA:       e.SHA,
			Path:      path,
			Direct:    direct,
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Namespace != edges[j].Namespace {
			return edges[i].Namespace < edges[j].Namespace
		}
		return edges[i].Name < edges[j].Name
	})
	return edges, nil
}

// PackageDetail is the full provenance record of one active edge.
type PackageDetail struct {
	Edge
	Type   string
	Commit string // origin sha the orphan was derived from
	URL    string
}

// Show resolves the provenance of a single active package.
func Show(c *Context, pkg string) (PackageDetail, error) {
	if err := c.RequireRoot(); err != nil {
		return PackageDetail{}, err
	}

	ref := refs.RootHead(c.Root, c.Namespace, pkg)
	sha, err := gitutil.Resolve(c.Dir, ref)
	if err != nil {
		return PackageDetail{}, fmt.Errorf("%w: %s", ErrRefMissing, ref)
	}

	prov := readProvenance(c.Dir, sha)
	path, ok := c.Router().Route(c.Namespace, pkg)
	if !ok {
		path = ""
	}
	_, direct := c.Manifest.Rev(pkg, c.Namespace)
	return PackageDetail{
		Edge: Edge{
			Name:      pkg,
			Namespace: c.Namespace,
			Revision:  prov.Revision,
			SHA:       sha,
			Path:      path,
			Direct:    direct,
		},
		Type:   prov.Type,
		Commit: prov.Commit,
		URL:    prov.URL,
	}, nil
}

// Releases lists the recorded release snapshots, version-sorted ascending.
func Releases(c *Context) ([]string, error) {
	if err := c.RequireRoot(); err != nil {
		return nil, err
	}

	entries, err := gitutil.ForEachRef(c.Dir, refs.PkgPrefix(c.Root))
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var revs []string
	for _, e := range entries {
		rev, ok := refs.SnapshotOf(e.Ref, c.Root)
		if !ok || rev == refs.Head || seen[rev] {
			continue
		}
		seen[rev] = true
		revs = append(revs, rev)
	}
	sort.Slice(revs, func(i, j int) bool { return version.Compare(revs[i], revs[j]) < 0 })
	return revs, nil
}
