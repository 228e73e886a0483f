package pkgs

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

func execGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

// initRepo creates a fresh git repository with one commit.
func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	execGit(t, dir, "init", "-b", "main")
	execGit(t, dir, "config", "user.email", "you@example.com")
	execGit(t, dir, "config", "user.name", "Your Name")
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Demo"), 0644); err != nil {
		t.Fatalf("Failed to write README: %v", err)
	}
	execGit(t, dir, "add", ".")
	execGit(t, dir, "commit", "-m", "initial commit")
	return dir
}

// ctxFor builds a fresh context, re-reading the manifest from disk.
func ctxFor(t *testing.T, dir string) *Context {
	t.Helper()
	c, err := NewContext(dir, Options{})
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	return c
}

// newPkgRepo creates a repository configured as package name.
func newPkgRepo(t *testing.T, name string) string {
	t.Helper()
	dir := initRepo(t)
	if err := ConfigAdd(ctxFor(t, dir), "name", name); err != nil {
		t.Fatalf("ConfigAdd failed: %v", err)
	}
	return dir
}

func addDep(t *testing.T, dir, pkg, rev, url string) {
	t.Helper()
	if err := Add(ctxFor(t, dir), pkg, rev, url); err != nil {
		t.Fatalf("Add %s@%s failed: %v", pkg, rev, err)
	}
}

func release(t *testing.T, dir, rev string) {
	t.Helper()
	if err := Release(ctxFor(t, dir), rev); err != nil {
		t.Fatalf("Release %s failed: %v", rev, err)
	}
}

// headEdges maps package name to resolved revision across the active HEAD
// edge set, the root excluded.
func headEdges(t *testing.T, dir string) map[string]string {
	t.Helper()
	edges, err := Status(ctxFor(t, dir))
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	out := make(map[string]string, len(edges))
	for _, e := range edges {
		out[e.Name] = e.Revision
	}
	return out
}

func wantEdges(t *testing.T, dir string, want map[string]string) {
	t.Helper()
	got := headEdges(t, dir)
	if len(got) != len(want) {
		t.Fatalf("HEAD edges = %v, want %v", got, want)
	}
	for name, rev := range want {
		if got[name] != rev {
			t.Fatalf("HEAD edges = %v, want %v", got, want)
		}
	}
}

// refSnapshot captures the (ref, sha) set under a prefix.
func refSnapshot(t *testing.T, dir, prefix string) map[string]string {
	t.Helper()
	entries, err := gitutil.ForEachRef(dir, prefix)
	if err != nil {
		t.Fatalf("ForEachRef failed: %v", err)
	}
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Ref] = e.SHA
	}
	return out
}

// assertOrphanIntegrity checks the orphan invariant over every ref of the
// form refs/pkgs/<p>/<r>/<p>: parentless, with matching trailers.
func assertOrphanIntegrity(t *testing.T, dir string, pkg string) {
	t.Helper()
	entries, err := gitutil.ForEachRef(dir, refs.PkgPrefix(pkg))
	if err != nil {
		t.Fatalf("ForEachRef failed: %v", err)
	}
	for _, e := range entries {
		rev, ok := refs.SnapshotOf(e.Ref, pkg)
		if !ok || e.Ref != refs.PkgOrphan(pkg, rev) {
			continue
		}
		if rev == refs.Head {
			continue // the most-recently-imported pointer aliases an orphan
		}
		parents, err := gitutil.ParentCount(dir, e.SHA)
		if err != nil || parents != 0 {
			t.Errorf("%s: expected orphan, got %d parents (%v)", e.Ref, parents, err)
		}
		prov := readProvenance(dir, e.SHA)
		if prov.Name != pkg || prov.Revision != rev {
			t.Errorf("%s: trailers (%q, %q) do not match ref", e.Ref, prov.Name, prov.Revision)
		}
	}
}
