// Package core exposes the package-manager operations to front-ends. It
// delegates to the internal pkgs package.
package core

import (
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// CheckGitVersion verifies the underlying git is recent enough at startup.
func CheckGitVersion() error {
	return gitutil.CheckVersion()
}

// Options carries per-invocation overrides; zero values fall back through
// manifest, environment and hard-coded defaults.
type Options = pkgs.Options

// Context is the resolved configuration of one invocation.
type Context = pkgs.Context

// PromptPolicy decides interactive revision conflicts.
type PromptPolicy = pkgs.PromptPolicy

// Edge, PackageDetail and TreeEntry are the structured results the
// projection commands return.
type (
	Edge          = pkgs.Edge
	PackageDetail = pkgs.PackageDetail
	TreeEntry     = pkgs.TreeEntry
)

// Error taxonomy, re-exported for front-ends.
var (
	ErrBadArgs         = pkgs.ErrBadArgs
	ErrNoPkgName       = pkgs.ErrNoPkgName
	ErrManifestInvalid = pkgs.ErrManifestInvalid
	ErrRefMissing      = pkgs.ErrRefMissing
	ErrRemoteFailed    = pkgs.ErrRemoteFailed
	ErrGitVersion      = pkgs.ErrGitVersion
	ErrNotDirectDep    = pkgs.ErrNotDirectDep
)

// NewContext resolves the enclosing repository and layers the configuration.
func NewContext(dir string, opts Options) (*Context, error) {
	return pkgs.NewContext(dir, opts)
}

// Add imports pkg at rev from url as a direct dependency of the root.
func Add(c *Context, pkg, rev, url string) error {
	return pkgs.Add(c, pkg, rev, url)
}

// AddDir imports a plain local directory as pkg at rev.
func AddDir(c *Context, pkg, rev, localPath string) error {
	return pkgs.AddDir(c, pkg, rev, localPath)
}

// Remove drops a direct dependency, restoring shared transitive packages
// from the remaining parents.
func Remove(c *Context, pkg string) error {
	return pkgs.Remove(c, pkg)
}

// Release freezes the HEAD graph under a versioned namespace and tags it.
func Release(c *Context, rev string) error {
	return pkgs.Release(c, rev)
}

// Checkout restores working tree and edge set of a release.
func Checkout(c *Context, rev string) error {
	return pkgs.Checkout(c, rev)
}

// Tree walks the dependency graph breadth-first.
func Tree(c *Context, rev string) ([]TreeEntry, error) {
	return pkgs.Tree(c, rev)
}

// Status lists the active HEAD edges.
func Status(c *Context) ([]Edge, error) {
	return pkgs.Status(c)
}

// Show resolves the provenance of one active package.
func Show(c *Context, pkg string) (PackageDetail, error) {
	return pkgs.Show(c, pkg)
}

// Releases lists recorded release snapshots, version-sorted.
func Releases(c *Context) ([]string, error) {
	return pkgs.Releases(c)
}

// Fetch pulls package refs and release tags from a remote.
func Fetch(c *Context, remote string) error {
	return pkgs.FetchRemote(c, remote)
}

// Push ships HEAD, release tags and the package namespace to a remote.
func Push(c *Context, remote string) error {
	return pkgs.PushRemote(c, remote)
}

// PushAll pushes to every configured remote.
func PushAll(c *Context) error {
	return pkgs.PushAll(c)
}

// Pull fetches, fast-forwards and re-materializes worktrees.
func Pull(c *Context, remote string) error {
	return pkgs.Pull(c, remote)
}

// Clone clones url into dst and bootstraps the package configuration.
func Clone(url, dst string, opts Options) error {
	return pkgs.CloneRepo(url, dst, opts)
}

// Export renders the HEAD graph as JSON.
func Export(c *Context) ([]byte, error) {
	return pkgs.Export(c)
}

// Import replays adds from an export document.
func Import(c *Context, data []byte) error {
	return pkgs.Import(c, data)
}

// ConfigAdd, ConfigGet and ConfigRm manage manifest values by dotted path.
func ConfigAdd(c *Context, key, value string) error {
	return pkgs.ConfigAdd(c, key, value)
}

func ConfigGet(c *Context, key string) (string, error) {
	return pkgs.ConfigGet(c, key)
}

func ConfigRm(c *Context, key string) error {
	return pkgs.ConfigRm(c, key)
}

// Prune deletes unreferenced refs in foreign package namespaces.
func Prune(c *Context) (int, error) {
	return pkgs.Prune(c)
}
