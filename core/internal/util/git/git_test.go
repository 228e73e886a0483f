package git

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func setupRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	execGit(t, dir, "init")
	execGit(t, dir, "config", "user.email", "you@example.com")
	execGit(t, dir, "config", "user.name", "Your Name")
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Demo"), 0644); err != nil {
		t.Fatalf("Failed to write README: %v", err)
	}
	execGit(t, dir, "add", ".")
	execGit(t, dir, "commit", "-m", "initial commit")
	return dir
}

func execGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

func TestCheckVersionTooOld(t *testing.T) {
	cases := []struct {
		out     string
		wantErr error
	}{
		{"git version 2.40.1", ErrVersion},
		{"git version 1.9.5", ErrVersion},
		{"git version 2.41.0", nil},
		{"git version 2.43.0.windows.1", nil},
		{"git version 3.0", nil},
	}
	for _, c := range cases {
		err := checkVersionOutput(c.out)
		if c.wantErr == nil {
			if err != nil {
				t.Errorf("checkVersionOutput(%q) = %v, want nil", c.out, err)
			}
			continue
		}
		if !errors.Is(err, c.wantErr) {
			t.Errorf("checkVersionOutput(%q) = %v, want ErrVersion", c.out, err)
		}
	}
}

func TestCheckVersionUnparseable(t *testing.T) {
	for _, out := range []string{"", "git version", "git version x.y"} {
		err := checkVersionOutput(out)
		if err == nil {
			t.Errorf("checkVersionOutput(%q) = nil, want error", out)
		}
		if errors.Is(err, ErrVersion) {
			t.Errorf("checkVersionOutput(%q) should not report ErrVersion", out)
		}
	}
}

func TestRefRoundTrip(t *testing.T) {
	dir := setupRepo(t)

	sha, err := Resolve(dir, "HEAD")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	ref := "refs/pkgs/demo/HEAD/demo"
	if RefExists(dir, ref) {
		t.Fatalf("ref %s should not exist yet", ref)
	}
	if err := UpdateRef(dir, ref, sha); err != nil {
		t.Fatalf("UpdateRef failed: %v", err)
	}
	if !RefExists(dir, ref) {
		t.Fatalf("ref %s should exist", ref)
	}

	entries, err := ForEachRef(dir, "refs/pkgs/")
	if err != nil {
		t.Fatalf("ForEachRef failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Ref != ref || entries[0].SHA != sha {
		t.Errorf("unexpected entries: %+v", entries)
	}

	if err := DeleteRef(dir, ref); err != nil {
		t.Fatalf("DeleteRef failed: %v", err)
	}
	if RefExists(dir, ref) {
		t.Errorf("ref %s should be gone", ref)
	}
}

func TestReadTrailers(t *testing.T) {
	dir := setupRepo(t)

	sha, err := Commit(dir, "a release", true, [][2]string{
		{"git-pkgs-name", "demo"},
		{"git-pkgs-revision", "1.0"},
	})
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	tr := ReadTrailers(dir, sha, "git-pkgs-name", "git-pkgs-revision", "git-pkgs-url")
	if tr["git-pkgs-name"] != "demo" {
		t.Errorf("name trailer = %q, want demo", tr["git-pkgs-name"])
	}
	if tr["git-pkgs-revision"] != "1.0" {
		t.Errorf("revision trailer = %q, want 1.0", tr["git-pkgs-revision"])
	}
	if _, ok := tr["git-pkgs-url"]; ok {
		t.Errorf("url trailer should be absent")
	}
}

func TestWriteTreeFromDir(t *testing.T) {
	dir := setupRepo(t)

	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "lib.lua"), []byte("return {}"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	tree, err := WriteTreeFromDir(dir, src, map[string][]byte{
		"pkgs.json": []byte(`{"name":"vendored"}`),
	})
	if err != nil {
		t.Fatalf("WriteTreeFromDir failed: %v", err)
	}

	// The caller's index must be untouched.
	out, err := RunGit(dir, "status", "--porcelain")
	if err != nil {
		t.Fatalf("status failed: %v", err)
	}
	if out != "" {
		t.Errorf("working tree dirtied: %q", out)
	}

	sha, err := CommitTree(dir, tree, "import")
	if err != nil {
		t.Fatalf("CommitTree failed: %v", err)
	}
	if n, err := ParentCount(dir, sha); err != nil || n != 0 {
		t.Errorf("ParentCount = %d, %v; want orphan", n, err)
	}

	if body, ok := ShowBlob(dir, sha, "pkgs.json"); !ok || body != `{"name":"vendored"}` {
		t.Errorf("injected blob = %q, %v", body, ok)
	}
	if _, ok := ShowBlob(dir, sha, "lib.lua"); !ok {
		t.Errorf("source file missing from tree")
	}
}

func TestFetchLocalPorcelain(t *testing.T) {
	dir := setupRepo(t)

	sha, err := Resolve(dir, "HEAD")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if err := UpdateRef(dir, "refs/pkgs/c/1.0/c", sha); err != nil {
		t.Fatalf("UpdateRef failed: %v", err)
	}

	updates, err := FetchLocal(dir, []string{"+refs/pkgs/c/1.0/*:refs/pkgs/demo/HEAD/*"},
		FetchOpts{Force: true, NoTags: true})
	if err != nil {
		t.Fatalf("FetchLocal failed: %v", err)
	}
	if len(updates) != 1 {
		t.Fatalf("got %d updates, want 1: %+v", len(updates), updates)
	}
	u := updates[0]
	if u.Ref != "refs/pkgs/demo/HEAD/c" || u.New != sha || !u.Created() {
		t.Errorf("unexpected update record: %+v", u)
	}
}
