package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
)

// WriteTreeFromDir builds a tree object from the contents of srcDir without
// touching the repository's index or working copy: staging happens in an
// ephemeral index that is removed on every exit path. extraBlobs entries are
// injected into the tree at their map key, overriding any file of the same
// name in srcDir.
func WriteTreeFromDir(dir, srcDir string, extraBlobs map[string][]byte) (string, error) {
	gitDir, err := GitDir(dir)
	if err != nil {
		return "", err
	}
	tmp, err := os.MkdirTemp("", "pkgs-index-")
	if err != nil {
		return "", fmt.Errorf("failed to create ephemeral index dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	env := []string{
		"GIT_INDEX_FILE=" + filepath.Join(tmp, "index"),
		"GIT_DIR=" + gitDir,
		"GIT_WORK_TREE=" + srcDir,
	}

	if _, err := RunGitEnv(srcDir, env, "add", "-A", "--", "."); err != nil {
		return "", fmt.Errorf("failed to stage %s: %w", srcDir, err)
	}

	paths := make([]string, 0, len(extraBlobs))
	for p := range extraBlobs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		sha, err := HashObject(dir, extraBlobs[p])
		if err != nil {
			return "", err
		}
		if _, err := RunGitEnv(srcDir, env, "update-index", "--add",
			"--cacheinfo", "100644,"+sha+","+p); err != nil {
			return "", fmt.Errorf("failed to inject %s: %w", p, err)
		}
	}

	return runGitOut(srcDir, env, "write-tree")
}

// HashObject writes data into the object store and returns its blob sha.
func HashObject(dir string, data []byte) (string, error) {
	cmd := exec.Command("git", "hash-object", "-w", "--stdin")
	cmd.Dir = dir
	cmd.Stdin = bytes.NewReader(data)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("hash-object: %w: %s", err, strings.TrimSpace(errb.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// CommitTree creates a commit object for tree with the given message and
// parents. With no parents the result is an orphan commit.
func CommitTree(dir, tree, message string, parents ...string) (string, error) {
	return CommitTreeIdent(dir, nil, tree, message, parents...)
}

// CommitTreeIdent is CommitTree with an explicit author/committer identity
// (GIT_AUTHOR_* / GIT_COMMITTER_* variables). Pinning the identity makes the
// resulting sha a pure function of tree and message.
func CommitTreeIdent(dir string, env []string, tree, message string, parents ...string) (string, error) {
	args := []string{"commit-tree", tree}
	for _, p := range parents {
		args = append(args, "-p", p)
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}
	cmd.Stdin = strings.NewReader(message)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("commit-tree: %w: %s", err, strings.TrimSpace(errb.String()))
	}
	return strings.TrimSpace(out.String()), nil
}
