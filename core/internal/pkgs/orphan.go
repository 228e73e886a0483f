package pkgs

import (
	"fmt"
	"strings"

	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Orphanize rewrites ref to point at a single parentless commit whose tree
// equals the tree of the commit currently named by ref, and whose message is
// the original message with provenance trailers appended (add-if-different).
// The original author and committer identity is reused, so orphanizing the
// same commit twice yields the same sha and the operation is idempotent.
//
// Returns the orphan's sha.
func Orphanize(dir, ref string, p Provenance) (string, error) {
	sha, err := gitutil.Resolve(dir, ref)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrRefMissing, ref)
	}

	// Already a revision-matching orphan: nothing to do.
	if parents, err := gitutil.ParentCount(dir, sha); err == nil && parents == 0 {
		prov := readProvenance(dir, sha)
		if prov.Name == p.Name && prov.Revision == p.Revision {
			return sha, nil
		}
	}

	tree, err := gitutil.TreeOf(dir, sha)
	if err != nil {
		return "", err
	}
	message, err := gitutil.CommitMessage(dir, sha)
	if err != nil {
		return "", err
	}
	ident, err := gitutil.CommitIdent(dir, sha)
	if err != nil {
		return "", err
	}

	if p.Commit == "" {
		p.Commit = sha
	}
	message = appendTrailers(message, p.trailers())

	orphan, err := gitutil.CommitTreeIdent(dir, ident, tree, message)
	if err != nil {
		return "", err
	}
	if err := gitutil.UpdateRef(dir, ref, orphan); err != nil {
		return "", err
	}
	return orphan, nil
}

// appendTrailers appends "key: value" lines as a trailer block, skipping any
// pair the message already carries verbatim.
func appendTrailers(message string, trailers [][2]string) string {
	message = strings.TrimRight(message, "\n")
	var missing []string
	for _, tr := range trailers {
		if tr[1] == "" {
			continue
		}
		line := tr[0] + ": " + tr[1]
		if hasLine(message, line) {
			continue
		}
		missing = append(missing, line)
	}
	if len(missing) == 0 {
		return message + "\n"
	}
	return message + "\n\n" + strings.Join(missing, "\n") + "\n"
}

func hasLine(message, line string) bool {
	for _, l := range strings.Split(message, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}
