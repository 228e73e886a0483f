package pkgs

import (
	"errors"
	"testing"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

func TestReleaseSnapshotClosure(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	addDep(t, app, "a", "1.0", f.a)
	addDep(t, app, "b", "1.0", f.b)

	headBefore := refSnapshot(t, app, refs.RootHeadPrefix("app"))
	release(t, app, "1.0")

	snap := refSnapshot(t, app, refs.RootSnapshotPrefix("app", "1.0"))

	// Snapshot = HEAD prior + the root's own entry, pointwise.
	for ref, sha := range headBefore {
		rel, _ := refs.Rel(ref, refs.RootHeadPrefix("app"))
		if rel == "app" {
			continue
		}
		snapRef := refs.RootSnapshot("app", "1.0", rel)
		if snap[snapRef] != sha {
			t.Errorf("%s = %s, want %s", snapRef, snap[snapRef], sha)
		}
	}
	self := refs.RootSnapshot("app", "1.0", "app")
	if _, ok := snap[self]; !ok {
		t.Errorf("snapshot misses the root entry %s", self)
	}
	assertOrphanIntegrity(t, app, "app")

	// The tag exists and the root orphan records the release.
	if _, err := gitutil.Resolve(app, "refs/tags/1.0"); err != nil {
		t.Errorf("release tag missing: %v", err)
	}
	sha, err := gitutil.Resolve(app, self)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if prov := readProvenance(app, sha); prov.Name != "app" || prov.Revision != "1.0" {
		t.Errorf("root orphan trailers = %+v", prov)
	}
}

func TestCheckoutRoundTrip(t *testing.T) {
	f := buildFixture(t)
	app := newPkgRepo(t, "app")

	// Release 1.0 with the diamond resolved.
	addDep(t, app, "a", "1.0", f.a)
	addDep(t, app, "b", "1.0", f.b)
	release(t, app, "1.0")
	edges10 := headEdges(t, app)

	// checkout HEAD is a no-op on the edge set.
	if err := Checkout(ctxFor(t, app), refs.Head); err != nil {
		t.Fatalf("Checkout HEAD failed: %v", err)
	}
	wantEdges(t, app, edges10)

	// Move on: drop b, release 1.1.
	if err := Remove(ctxFor(t, app), "b"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	release(t, app, "1.1")
	edges11 := headEdges(t, app)

	// Both snapshots restore exactly.
	if err := Checkout(ctxFor(t, app), "1.0"); err != nil {
		t.Fatalf("Checkout 1.0 failed: %v", err)
	}
	wantEdges(t, app, edges10)
	c := ctxFor(t, app)
	if v, _ := c.Manifest.Get("version"); v != "1.0" {
		t.Errorf("manifest version = %q after checkout 1.0", v)
	}
	if _, ok := c.Manifest.Rev("b", ""); !ok {
		t.Errorf("manifest of 1.0 should list b")
	}

	if err := Checkout(ctxFor(t, app), "1.1"); err != nil {
		t.Fatalf("Checkout 1.1 failed: %v", err)
	}
	wantEdges(t, app, edges11)
	c = ctxFor(t, app)
	if v, _ := c.Manifest.Get("version"); v != "1.1" {
		t.Errorf("manifest version = %q after checkout 1.1", v)
	}
	if _, ok := c.Manifest.Rev("b", ""); ok {
		t.Errorf("manifest of 1.1 should not list b")
	}
}

func TestCheckoutUnknownReleaseRejected(t *testing.T) {
	app := newPkgRepo(t, "app")
	err := Checkout(ctxFor(t, app), "9.9")
	if !errors.Is(err, ErrRefMissing) {
		t.Fatalf("expected ErrRefMissing for unknown release")
	}
}

func TestReleasesAreVersionSorted(t *testing.T) {
	app := newPkgRepo(t, "app")
	release(t, app, "1.9")
	release(t, app, "1.10")
	release(t, app, "1.2")

	revs, err := Releases(ctxFor(t, app))
	if err != nil {
		t.Fatalf("Releases failed: %v", err)
	}
	want := []string{"1.2", "1.9", "1.10"}
	if len(revs) != len(want) {
		t.Fatalf("Releases = %v, want %v", revs, want)
	}
	for i := range want {
		if revs[i] != want[i] {
			t.Fatalf("Releases = %v, want %v", revs, want)
		}
	}
}
