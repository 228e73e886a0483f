package git

import "strings"

// WorktreeAdd attaches a worktree at path, detached at rev.
func WorktreeAdd(dir, path, rev string, noCheckout bool) error {
	args := []string{"worktree", "add", "--force", "--detach"}
	if noCheckout {
		args = append(args, "--no-checkout")
	}
	args = append(args, path, rev)
	_, err := RunGit(dir, args...)
	return err
}

// WorktreeRemove detaches and deletes the worktree at path.
func WorktreeRemove(dir, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	_, err := RunGit(dir, args...)
	return err
}

// WorktreePrune drops stale worktree bookkeeping.
func WorktreePrune(dir string) error {
	_, err := RunGit(dir, "worktree", "prune")
	return err
}

// WorktreeList returns the absolute paths of all attached worktrees,
// including the main one.
func WorktreeList(dir string) ([]string, error) {
	out, err := runGitOut(dir, nil, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		if p, ok := strings.CutPrefix(line, "worktree "); ok {
			paths = append(paths, p)
		}
	}
	return paths, nil
}
