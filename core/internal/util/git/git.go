// Package git wraps the git command line as a narrow, typed capability
// surface. Everything above this package manipulates (ref → commit) bindings
// and structured records; nothing above it parses raw git stdout.
package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// Porcelain fetch output, which the resolver depends on, appeared in 2.41.
const (
	MinMajor = 2
	MinMinor = 41
)

// ErrVersion signals that the installed git is older than MinMajor.MinMinor.
var ErrVersion = errors.New("git too old")

// RunGit executes a git command in dir and returns trimmed combined output.
func RunGit(dir string, args ...string) (string, error) {
	return RunGitEnv(dir, nil, args...)
}

// RunGitEnv is RunGit with extra environment variables (KEY=VALUE form)
// appended to the inherited environment.
func RunGitEnv(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	text := strings.TrimSpace(out.String())
	if err != nil {
		return text, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, text)
	}
	return text, nil
}

// runGitOut executes a git command keeping stderr separate, for commands
// whose stdout is parsed.
func runGitOut(dir string, env []string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	if len(env) > 0 {
		cmd.Env = append(cmd.Environ(), env...)
	}

	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	if err != nil {
		return strings.TrimSpace(out.String()),
			fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(errb.String()))
	}
	return strings.TrimSpace(out.String()), nil
}

// CheckVersion returns ErrVersion when the installed git is older than
// MinMajor.MinMinor.
func CheckVersion() error {
	out, err := RunGit(".", "version")
	if err != nil {
		return fmt.Errorf("git is not available: %w", err)
	}
	return checkVersionOutput(out)
}

// checkVersionOutput parses "git version 2.43.0" (possibly with a platform
// suffix) and enforces the minimum.
func checkVersionOutput(out string) error {
	fields := strings.Fields(out)
	if len(fields) < 3 {
		return fmt.Errorf("cannot parse git version %q", out)
	}
	parts := strings.Split(fields[2], ".")
	if len(parts) < 2 {
		return fmt.Errorf("cannot parse git version %q", out)
	}
	major, err1 := strconv.Atoi(parts[0])
	minor, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return fmt.Errorf("cannot parse git version %q", out)
	}
	if major < MinMajor || (major == MinMajor && minor < MinMinor) {
		return fmt.Errorf("%w: git %d.%d or newer required, found %s",
			ErrVersion, MinMajor, MinMinor, fields[2])
	}
	return nil
}

// FindRepoRoot returns the absolute path to the root of the working tree
// containing dir.
func FindRepoRoot(dir string) (string, error) {
	out, err := runGitOut(dir, nil, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("failed to find git root (are you in a git repo?): %w", err)
	}
	return out, nil
}

// GitDir returns the absolute path of the repository's .git directory.
func GitDir(dir string) (string, error) {
	return runGitOut(dir, nil, "rev-parse", "--absolute-git-dir")
}

// Init initializes a new git repository.
func Init(dir string) error {
	_, err := RunGit(dir, "init")
	return err
}

// Clone clones url into dst.
func Clone(url, dst string) error {
	_, err := RunGit(".", "clone", url, dst)
	return err
}

// Checkout switches the working tree to the given rev (branch, tag or sha).
func Checkout(dir, rev string) error {
	_, err := RunGit(dir, "checkout", rev)
	return err
}

// CheckoutForce switches the working tree discarding local modifications.
func CheckoutForce(dir, rev string) error {
	_, err := RunGit(dir, "checkout", "--force", rev)
	return err
}

// Add stages a path.
func Add(dir, path string) error {
	_, err := RunGit(dir, "add", "--", path)
	return err
}

// Commit records a commit from the index and returns its sha. allowEmpty
// permits commits with no staged changes; trailers are appended to the
// message in order.
func Commit(dir, message string, allowEmpty bool, trailers [][2]string) (string, error) {
	args := []string{"commit", "-m", message}
	if allowEmpty {
		args = append(args, "--allow-empty")
	}
	for _, tr := range trailers {
		args = append(args, "--trailer", tr[0]+"="+tr[1])
	}
	if _, err := RunGit(dir, args...); err != nil {
		return "", err
	}
	return Resolve(dir, "HEAD")
}

// Tag creates (or with force moves) a lightweight tag at sha.
func Tag(dir, name, sha string, force bool) error {
	args := []string{"tag"}
	if force {
		args = append(args, "-f")
	}
	args = append(args, name, sha)
	_, err := RunGit(dir, args...)
	return err
}

// Describe returns a human identifier for the current HEAD, preferring tags.
func Describe(dir string) string {
	out, err := runGitOut(dir, nil, "describe", "--tags", "--always")
	if err != nil {
		return ""
	}
	return out
}

// RemoteURL returns the fetch URL of the named remote, or "" when the remote
// is not configured.
func RemoteURL(dir, remote string) string {
	out, err := runGitOut(dir, nil, "remote", "get-url", remote)
	if err != nil {
		return ""
	}
	return out
}

// Remotes lists the configured remote names.
func Remotes(dir string) ([]string, error) {
	out, err := runGitOut(dir, nil, "remote")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
