package git

import (
	"fmt"
	"strings"
)

// ZeroSHA is the null object id porcelain fetch reports for created or
// deleted refs.
const ZeroSHA = "0000000000000000000000000000000000000000"

// RefEntry is one (ref, commit) binding.
type RefEntry struct {
	Ref string
	SHA string
}

// RefExists reports whether the fully qualified ref exists.
func RefExists(dir, ref string) bool {
	_, err := runGitOut(dir, nil, "show-ref", "--verify", "--quiet", ref)
	return err == nil
}

// Resolve returns the commit sha a ref (or any rev expression) names, or ""
// with an error when it cannot be resolved.
func Resolve(dir, rev string) (string, error) {
	out, err := runGitOut(dir, nil, "rev-parse", "--verify", "--quiet", rev+"^{commit}")
	if err != nil {
		return "", fmt.Errorf("cannot resolve %s", rev)
	}
	return out, nil
}

// UpdateRef points ref at sha, creating it when absent.
func UpdateRef(dir, ref, sha string) error {
	_, err := RunGit(dir, "update-ref", ref, sha)
	return err
}

// DeleteRef removes ref.
func DeleteRef(dir, ref string) error {
	_, err := RunGit(dir, "update-ref", "-d", ref)
	return err
}

// ForEachRef lists the refs under prefix in refname order.
func ForEachRef(dir, prefix string) ([]RefEntry, error) {
	out, err := runGitOut(dir, nil, "for-each-ref",
		"--format=%(objectname) %(refname)", prefix)
	if err != nil {
		return nil, err
	}
	var entries []RefEntry
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		sha, ref, ok := strings.Cut(line, " ")
		if !ok {
			continue
		}
		entries = append(entries, RefEntry{Ref: ref, SHA: sha})
	}
	return entries, nil
}

// ShowBlob returns the contents of path inside the tree that rev names.
func ShowBlob(dir, rev, path string) (string, bool) {
	out, err := runGitOut(dir, nil, "show", rev+":"+path)
	if err != nil {
		return "", false
	}
	return out, true
}

// TreeOf returns the tree sha of a commit.
func TreeOf(dir, commit string) (string, error) {
	return runGitOut(dir, nil, "rev-parse", commit+"^{tree}")
}

// ParentCount returns the number of parents of a commit.
func ParentCount(dir, commit string) (int, error) {
	out, err := runGitOut(dir, nil, "rev-list", "--no-walk", "--parents", commit)
	if err != nil {
		return 0, err
	}
	// "<sha> <parent>..." on a single line
	return len(strings.Fields(out)) - 1, nil
}
