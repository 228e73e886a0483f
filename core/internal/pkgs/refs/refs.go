// Package refs builds and parses the reference namespace layout:
//
//	refs/pkgs/<R>/HEAD/<pkg>        active edge of the root package R
//	refs/pkgs/<R>/HEAD/<ns>/<pkg>   active edge inside namespace <ns>
//	refs/pkgs/<R>/<rev>/...         frozen snapshot of HEAD at release <rev>
//	refs/pkgs/<pkg>/<rev>/<pkg>     the orphan commit for <pkg>@<rev>
//	refs/pkgs/<pkg>/<rev>/<dep>     transitive edge declared by <pkg>@<rev>
//	refs/pkgs/<pkg>/HEAD/<pkg>      most recently imported revision of <pkg>
//
// Package names may contain "/", so parsing works relative to known prefixes
// rather than by counting path segments. Revision tokens must not contain "/".
package refs

import "strings"

// Prefix is the root of the reference namespace.
const Prefix = "refs/pkgs"

// Head is the pseudo revision naming the active edge set.
const Head = "HEAD"

// RootHead returns the active edge ref for pkg, optionally namespaced.
func RootHead(root, ns, pkg string) string {
	return RootHeadPrefix(root) + Edge(ns, pkg)
}

// RootHeadPrefix returns "refs/pkgs/<root>/HEAD/".
func RootHeadPrefix(root string) string {
	return Prefix + "/" + root + "/" + Head + "/"
}

// RootSnapshot returns the frozen edge ref for pkg in snapshot rev.
func RootSnapshot(root, rev, pkg string) string {
	return RootSnapshotPrefix(root, rev) + pkg
}

// RootSnapshotPrefix returns "refs/pkgs/<root>/<rev>/".
func RootSnapshotPrefix(root, rev string) string {
	return Prefix + "/" + root + "/" + rev + "/"
}

// PkgOrphan returns the ref naming the orphan commit of pkg at rev.
func PkgOrphan(pkg, rev string) string {
	return PkgSnapshotPrefix(pkg, rev) + pkg
}

// PkgHead returns the most-recently-imported pointer for pkg.
func PkgHead(pkg string) string {
	return PkgOrphan(pkg, Head)
}

// PkgTransitive returns the ref of a transitive edge declared by pkg@rev.
func PkgTransitive(pkg, rev, dep string) string {
	return PkgSnapshotPrefix(pkg, rev) + dep
}

// PkgSnapshotPrefix returns "refs/pkgs/<pkg>/<rev>/".
func PkgSnapshotPrefix(pkg, rev string) string {
	return Prefix + "/" + pkg + "/" + rev + "/"
}

// PkgPrefix returns "refs/pkgs/<pkg>/", the whole namespace owned by pkg.
func PkgPrefix(pkg string) string {
	return Prefix + "/" + pkg + "/"
}

// Edge joins an optional namespace and a package name into the relative edge
// path used under a HEAD or snapshot prefix.
func Edge(ns, pkg string) string {
	if ns == "" {
		return pkg
	}
	return ns + "/" + pkg
}

// SplitEdge splits a relative edge path into (namespace, package) given the
// package name recorded in the commit's trailers. The trailer is
// authoritative because package names themselves may contain "/".
func SplitEdge(rel, name string) (ns, pkg string) {
	if rel == name {
		return "", name
	}
	if strings.HasSuffix(rel, "/"+name) {
		return strings.TrimSuffix(rel, "/"+name), name
	}
	// Trailer disagrees with the ref layout; treat the whole path as the name.
	return "", rel
}

// Rel strips prefix from ref, returning the relative edge path and whether
// ref was under prefix at all.
func Rel(ref, prefix string) (string, bool) {
	return strings.CutPrefix(ref, prefix)
}

// SnapshotOf extracts the <rev> segment of a ref under "refs/pkgs/<owner>/".
// Returns false when ref is not under owner's namespace.
func SnapshotOf(ref, owner string) (string, bool) {
	rel, ok := strings.CutPrefix(ref, PkgPrefix(owner))
	if !ok {
		return "", false
	}
	rev, _, ok := strings.Cut(rel, "/")
	if !ok {
		return "", false
	}
	return rev, true
}
