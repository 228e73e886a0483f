package git

import (
	"fmt"
	"strings"
)

// CommitMessage returns the full commit message body of a commit.
func CommitMessage(dir, commit string) (string, error) {
	return runGitOut(dir, nil, "show", "-s", "--format=%B", commit)
}

// CommitAuthor returns the author name and email of a commit.
func CommitAuthor(dir, commit string) (name, email string) {
	out, err := runGitOut(dir, nil, "show", "-s", "--format=%an%x00%ae", commit)
	if err != nil {
		return "", ""
	}
	name, email, _ = strings.Cut(out, "\x00")
	return name, email
}

// CommitIdent returns the author and committer identity of a commit as
// GIT_AUTHOR_* / GIT_COMMITTER_* environment variables, so a derived commit
// can reproduce it exactly.
func CommitIdent(dir, commit string) ([]string, error) {
	out, err := runGitOut(dir, nil,
		"show", "-s", "--format=%an%x00%ae%x00%aD%x00%cn%x00%ce%x00%cD", commit)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(out, "\x00")
	if len(parts) != 6 {
		return nil, fmt.Errorf("cannot parse identity of %s", commit)
	}
	return []string{
		"GIT_AUTHOR_NAME=" + parts[0],
		"GIT_AUTHOR_EMAIL=" + parts[1],
		"GIT_AUTHOR_DATE=" + parts[2],
		"GIT_COMMITTER_NAME=" + parts[3],
		"GIT_COMMITTER_EMAIL=" + parts[4],
		"GIT_COMMITTER_DATE=" + parts[5],
	}, nil
}

// ReadTrailers extracts "key: value" trailer lines from a commit message for
// the requested keys. Later occurrences win, matching git's own trailer
// interpretation.
func ReadTrailers(dir, commit string, keys ...string) map[string]string {
	msg, err := CommitMessage(dir, commit)
	if err != nil {
		return map[string]string{}
	}
	return ParseTrailers(msg, keys...)
}

// ParseTrailers scans a message for "key: value" lines with one of the given
// keys.
func ParseTrailers(message string, keys ...string) map[string]string {
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	found := make(map[string]string)
	for _, line := range strings.Split(message, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if want[key] {
			found[key] = strings.TrimSpace(value)
		}
	}
	return found
}
