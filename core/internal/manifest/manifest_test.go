package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "pkgs.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m.Name() != "" || len(m.Dependencies()) != 0 {
		t.Errorf("expected empty manifest, got %v", m)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkgs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Load = %v, want ErrInvalid", err)
	}
}

func TestUnknownKeysDropped(t *testing.T) {
	m, err := Parse([]byte(`{"name":"app","bogus":"x","private":true}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := string(m.Encode())
	if strings.Contains(out, "bogus") || strings.Contains(out, "private") {
		t.Errorf("unknown keys survived: %s", out)
	}
	if m.Name() != "app" {
		t.Errorf("Name = %q", m.Name())
	}
}

func TestDependencyOrdering(t *testing.T) {
	m := New()
	m.AddDep("zlib", "1.3", "")
	m.AddDep("tool", "HEAD", "dev")
	m.AddDep("abc", "1.0", "")
	m.AddDep("aaa", "2.0", "dev")

	got := m.DepKeys()
	want := []string{"abc", "zlib", "dev:aaa", "dev:tool"}
	if len(got) != len(want) {
		t.Fatalf("DepKeys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("DepKeys = %v, want %v", got, want)
		}
	}

	out := string(m.Encode())
	if strings.Index(out, `"abc"`) > strings.Index(out, `"zlib"`) {
		t.Errorf("unnamespaced deps not sorted:\n%s", out)
	}
	if strings.Index(out, `"zlib"`) > strings.Index(out, `"dev:aaa"`) {
		t.Errorf("namespaced deps must come last:\n%s", out)
	}
}

func TestPathsPreserveDeclarationOrder(t *testing.T) {
	doc := `{"paths":{"dev:*":"dev_pkgs","zz:*":"zz_pkgs","*":"pkgs"}}`
	m, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	rules := m.PathRules()
	if len(rules) != 3 || rules[0].Pattern != "dev:*" || rules[1].Pattern != "zz:*" || rules[2].Pattern != "*" {
		t.Fatalf("PathRules = %+v", rules)
	}

	// Round-trip keeps the order.
	m2, err := Parse(m.Encode())
	if err != nil {
		t.Fatalf("re-Parse failed: %v", err)
	}
	rules2 := m2.PathRules()
	for i := range rules {
		if rules2[i] != rules[i] {
			t.Errorf("round-trip reordered paths: %+v vs %+v", rules2, rules)
		}
	}
}

func TestCanonicalFieldOrder(t *testing.T) {
	m := New()
	m.Set("version", "1.0")
	m.Set("name", "app")
	m.Set("prefix", "pkgs")
	m.AddDep("c", "1.1", "")

	out := string(m.Encode())
	iName := strings.Index(out, `"name"`)
	iVersion := strings.Index(out, `"version"`)
	iPrefix := strings.Index(out, `"prefix"`)
	iDeps := strings.Index(out, `"dependencies"`)
	if !(iName < iVersion && iVersion < iPrefix && iPrefix < iDeps) {
		t.Errorf("fields out of canonical order:\n%s", out)
	}
}

func TestDottedGetSet(t *testing.T) {
	m := New()
	if err := m.Set("config.registry", "https://example.com"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Set("config.strict", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if v, ok := m.Get("config.registry"); !ok || v != "https://example.com" {
		t.Errorf("Get config.registry = %q, %v", v, ok)
	}
	if v, ok := m.Get("config.strict"); !ok || v != "true" {
		t.Errorf("Get config.strict = %q, %v", v, ok)
	}
	if err := m.Set("nonsense.key", "v"); err == nil {
		t.Errorf("Set on unknown field should fail")
	}

	m.Unset("config.strict")
	if _, ok := m.Get("config.strict"); ok {
		t.Errorf("Unset did not remove value")
	}
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pkgs.json")
	m := New()
	m.Set("name", "app")
	m.AddDep("c", "1.0", "")
	if err := m.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	m2, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if m2.Name() != "app" {
		t.Errorf("Name = %q", m2.Name())
	}
	if rev, ok := m2.Rev("c", ""); !ok || rev != "1.0" {
		t.Errorf("Rev = %q, %v", rev, ok)
	}
}
