// Package route maps a package reference to its place in the working tree.
// Placement is driven by the manifest's prefix and its ordered paths rules;
// a rule can also suppress materialization entirely.
package route

import (
	"regexp"
	"strings"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/pkgs/refs"
)

// Skip is the rule target that records the ref without creating a worktree.
const Skip = "false"

// Router computes worktree paths from the active manifest configuration.
type Router struct {
	Root        string
	Prefix      string
	Rules       []manifest.PathRule
	StripSuffix string // constant ref leaf some ecosystems append, e.g. "/PKG"
}

// Route returns the worktree path for an edge (ns, pkg), or ok=false when a
// matching rule suppresses checkout. Rules are evaluated in declaration
// order against the edge's ref name; the first match wins.
func (r Router) Route(ns, pkg string) (path string, ok bool) {
	name := pkg
	if r.StripSuffix != "" {
		name = strings.TrimSuffix(name, r.StripSuffix)
	}

	if len(r.Rules) == 0 {
		return r.Prefix + "/" + name, true
	}

	// Patterns are declared against the HEAD namespace, so the edge is
	// normalized to its HEAD form before matching regardless of which
	// snapshot it came from.
	edgeRef := refs.RootHeadPrefix(r.Root) + refs.Edge(ns, name)
	for _, rule := range r.Rules {
		ruleNs, glob := splitPattern(rule.Pattern)
		pat := refs.RootHeadPrefix(r.Root) + refs.Edge(ruleNs, glob)
		if !matchRefGlob(pat, edgeRef) {
			continue
		}
		if rule.Target == Skip {
			return "", false
		}
		return rule.Target + "/" + name, true
	}
	return r.Prefix + "/" + name, true
}

// splitPattern parses "[<ns>:]<glob>".
func splitPattern(pattern string) (ns, glob string) {
	if i := strings.Index(pattern, ":"); i >= 0 {
		return pattern[:i], pattern[i+1:]
	}
	return "", pattern
}

// matchRefGlob matches a glob against a full ref name with git's ref
// matching semantics: "*" crosses "/" boundaries.
func matchRefGlob(pattern, ref string) bool {
	var re strings.Builder
	re.WriteString("^")
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*':
			re.WriteString(".*")
		case '?':
			re.WriteString(".")
		default:
			re.WriteString(regexp.QuoteMeta(string(pattern[i])))
		}
	}
	re.WriteString("$")
	matched, err := regexp.MatchString(re.String(), ref)
	return err == nil && matched
}
