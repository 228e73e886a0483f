package pkgs

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/file"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// The publisher fixture of the end-to-end scenarios:
//
//	c releases 1.0 and 1.1 (no dependencies)
//	d releases 1.0 and 1.1
//	a@1.0 depends on c@1.0 and d@1.0
//	b@1.0 depends on c@1.1 and d@1.1
type fixture struct {
	c, d, a, b string
}

func buildFixture(t *testing.T) fixture {
	t.Helper()
	f := fixture{
		c: newPkgRepo(t, "c"),
		d: newPkgRepo(t, "d"),
		a: newPkgRepo(t, "a"),
		b: newPkgRepo(t, "b"),
	}
	release(t, f.c, "1.0")
	release(t, f.c, "1.1")
	release(t, f.d, "1.0")
	release(t, f.d, "1.1")

	addDep(t, f.a, "c", "1.0", f.c)
	addDep(t, f.a, "d", "1.0", f.d)
	release(t, f.a, "1.0")

	addDep(t, f.b, "c", "1.1", f.c)
	addDep(t, f.b, "d", "1.1", f.d)
	release(t, f.b, "1.0")
	return f
}

func TestTransitiveUpgradeUnderMax(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a)
	wantEdges(t, app, map[string]string{"a": "1.0", "c": "1.0", "d": "1.0"})

	addDep(t, app, "c", "1.1", f.c)
	wantEdges(t, app, map[string]string{"a": "1.0", "c": "1.1", "d": "1.0"})

	assertOrphanIntegrity(t, app, "a")
	assertOrphanIntegrity(t, app, "c")
}

func TestDiamondResolution(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a)
	addDep(t, app, "b", "1.0", f.b)
	wantEdges(t, app, map[string]string{
		"a": "1.0", "b": "1.0", "c": "1.1", "d": "1.1",
	})
}

func TestMinStrategyKeepsOlder(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a) // brings c@1.0
	c, err := NewContext(app, Options{Strategy: StrategyMin})
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	if err := Add(c, "b", "1.0", f.b); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	wantEdges(t, app, map[string]string{
		"a": "1.0", "b": "1.0", "c": "1.0", "d": "1.0",
	})
}

func TestAddIsIdempotent(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a)
	before := refSnapshot(t, app, refs.Prefix+"/")
	manifestBefore := string(ctxFor(t, app).Manifest.Encode())

	addDep(t, app, "a", "1.0", f.a)
	after := refSnapshot(t, app, refs.Prefix+"/")
	manifestAfter := string(ctxFor(t, app).Manifest.Encode())

	if len(before) != len(after) {
		t.Fatalf("ref count changed: %d -> %d", len(before), len(after))
	}
	for ref, sha := range before {
		if after[ref] != sha {
			t.Errorf("%s moved: %s -> %s", ref, sha, after[ref])
		}
	}
	if manifestBefore != manifestAfter {
		t.Errorf("manifest changed:\n%s\nvs\n%s", manifestBefore, manifestAfter)
	}
}

func TestManifestMatchesDirectEdges(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a)
	addDep(t, app, "b", "1.0", f.b)

	c := ctxFor(t, app)
	edges, err := Status(c)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	direct := map[string]bool{}
	for _, e := range edges {
		if e.Direct {
			direct[e.Name] = true
		}
	}
	deps := c.Manifest.Dependencies()
	if len(direct) != len(deps) {
		t.Fatalf("direct edges %v vs manifest deps %v", direct, deps)
	}
	for name := range deps {
		if !direct[name] {
			t.Errorf("manifest dep %s is not a direct edge", name)
		}
	}
}

func TestRemoveWithSubstitution(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a)
	addDep(t, app, "b", "1.0", f.b)

	if err := Remove(ctxFor(t, app), "a"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	wantEdges(t, app, map[string]string{
		"b": "1.0", "c": "1.1", "d": "1.1",
	})
}

func TestRemoveTransitiveRefused(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a)
	err := Remove(ctxFor(t, app), "c")
	if !errors.Is(err, ErrNotDirectDep) {
		t.Fatalf("Remove = %v, want ErrNotDirectDep", err)
	}
}

func TestCyclicGuard(t *testing.T) {
	e := newPkgRepo(t, "e")
	release(t, e, "1.0")

	a := newPkgRepo(t, "a")
	addDep(t, a, "e", "1.0", e)
	release(t, a, "1.0")

	// e@1.1 depends on a@1.0, which transitively pulls e@1.0. The
	// self-reference is absorbed when a is folded into e's own graph.
	addDep(t, e, "a", "1.0", a)
	release(t, e, "1.1")

	app := newPkgRepo(t, "app")
	addDep(t, app, "e", "1.1", e)
	wantEdges(t, app, map[string]string{"e": "1.1", "a": "1.0"})

	// The orphan of e@1.1 is not dragged back to 1.0.
	sha, err := gitutil.Resolve(app, refs.PkgOrphan("e", "1.1"))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if rev := readProvenance(app, sha).Revision; rev != "1.1" {
		t.Errorf("e@1.1 orphan carries revision %q", rev)
	}
}

func TestNamespacedPathRouting(t *testing.T) {
	f := buildFixture(t)
	tool := newPkgRepo(t, "tool")
	release(t, tool, "1.0")

	app := newPkgRepo(t, "app")
	c := ctxFor(t, app)
	if err := ConfigAdd(c, "paths.dev:*", "dev_pkgs"); err != nil {
		t.Fatalf("ConfigAdd failed: %v", err)
	}
	if err := ConfigAdd(c, "paths.*", "pkgs"); err != nil {
		t.Fatalf("ConfigAdd failed: %v", err)
	}

	dev, err := NewContext(app, Options{Namespace: "dev"})
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}
	if err := Add(dev, "tool", "1.0", tool); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	addDep(t, app, "c", "1.0", f.c)

	if !file.Exists(filepath.Join(app, "dev_pkgs", "tool")) {
		t.Errorf("namespaced dependency not at dev_pkgs/tool")
	}
	if !file.Exists(filepath.Join(app, "pkgs", "c")) {
		t.Errorf("plain dependency not at pkgs/c")
	}
}
