package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Update is one record of the --porcelain fetch stream:
// "<flag> <old-object-id> <new-object-id> <local-reference>".
type Update struct {
	Status byte   // ' ' ff, '+' forced, '*' new, '-' pruned, 't' tag, '!' rejected, '=' up to date
	Old    string // ZeroSHA for newly created refs
	New    string
	Ref    string // fully qualified local ref
}

// Created reports whether the record created a previously absent ref.
func (u Update) Created() bool { return u.Old == ZeroSHA }

// FetchOpts controls a fetch.
type FetchOpts struct {
	Depth  int // 0 = full history
	Force  bool
	NoTags bool
	Prune  bool
}

// Fetch fetches the given refspecs from url and returns the update records in
// the order the remote produced them.
func Fetch(dir, url string, refspecs []string, opts FetchOpts) ([]Update, error) {
	args := []string{"fetch", "--porcelain", "--no-write-fetch-head"}
	if opts.Force {
		args = append(args, "--force")
	}
	if opts.NoTags {
		args = append(args, "--no-tags")
	}
	if opts.Prune {
		args = append(args, "--prune")
	}
	if opts.Depth > 0 {
		args = append(args, fmt.Sprintf("--depth=%d", opts.Depth))
	}
	args = append(args, url)
	args = append(args, refspecs...)

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("fetch from %s failed: %w: %s", url, err, strings.TrimSpace(errb.String()))
	}
	return parsePorcelain(out.String()), nil
}

// FetchLocal fetches refspecs from this repository into itself. Used to
// install one ref namespace into another with fetch's refspec matching and
// update reporting.
func FetchLocal(dir string, refspecs []string, opts FetchOpts) ([]Update, error) {
	return Fetch(dir, ".", refspecs, opts)
}

func parsePorcelain(out string) []Update {
	var updates []Update
	for _, line := range strings.Split(out, "\n") {
		if len(line) < 2 {
			continue
		}
		fields := strings.Fields(line[1:])
		if len(fields) != 3 {
			continue
		}
		updates = append(updates, Update{
			Status: line[0],
			Old:    fields[0],
			New:    fields[1],
			Ref:    fields[2],
		})
	}
	return updates
}

// Push pushes refspecs to the named remote.
func Push(dir, remote string, refspecs []string) error {
	args := append([]string{"push", remote}, refspecs...)
	_, err := RunGit(dir, args...)
	return err
}
