// Package tui renders the core's structured results for the terminal. It is
// a thin formatter: all traversal and resolution happens in core.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core"
)

// RenderTree formats the ancestry-keyed traversal as a glyph tree.
func RenderTree(entries []core.TreeEntry) string {
	children := make(map[string][]core.TreeEntry)
	var roots []core.TreeEntry
	for _, e := range entries {
		if len(e.Ancestry) == 0 {
			roots = append(roots, e)
			continue
		}
		parent := strings.Join(e.Ancestry, ":")
		children[parent] = append(children[parent], e)
	}

	var sb strings.Builder
	var walk func(e core.TreeEntry, prefix string)
	walk = func(e core.TreeEntry, prefix string) {
		kids := children[e.Key()]
		for i, kid := range kids {
			glyph, cont := "├── ", "│   "
			if i == len(kids)-1 {
				glyph, cont = "└── ", "    "
			}
			sb.WriteString(prefix + styled(glyphStyle, glyph) + nodeLabel(kid) + "\n")
			if !kid.Deduped {
				walk(kid, prefix+styled(glyphStyle, cont))
			}
		}
	}

	for _, root := range roots {
		sb.WriteString(nodeLabel(root) + "\n")
		walk(root, "")
	}
	return sb.String()
}

func nodeLabel(e core.TreeEntry) string {
	label := styled(pkgStyle, e.Name)
	if e.Revision != "" {
		label += styled(revStyle, "@"+e.Revision)
	}
	if e.Deduped {
		label += " " + styled(dedupedStyle, "(deduped)")
	}
	return label
}

// RenderStatus formats the active edge list as an aligned table.
func RenderStatus(edges []core.Edge) string {
	if len(edges) == 0 {
		return "no dependencies\n"
	}

	nameWidth, revWidth := 0, 0
	for _, e := range edges {
		if n := len(displayName(e)); n > nameWidth {
			nameWidth = n
		}
		if n := len(e.Revision); n > revWidth {
			revWidth = n
		}
	}

	var sb strings.Builder
	for _, e := range edges {
		kind, style := "transitive", transitiveStyle
		if e.Direct {
			kind, style = "direct    ", directStyle
		}
		path := e.Path
		if path == "" {
			path = "(not checked out)"
		}
		sb.WriteString(styledPad(pkgStyle, displayName(e), nameWidth) + "  " +
			styledPad(revStyle, e.Revision, revWidth) + "  " +
			styled(style, kind) + "  " + path + "\n")
	}
	return sb.String()
}

// RenderDetail formats a single package's provenance.
func RenderDetail(d core.PackageDetail) string {
	var sb strings.Builder
	sb.WriteString(styled(pkgStyle, displayName(d.Edge)) + styled(revStyle, "@"+d.Revision) + "\n")
	kind := "transitive"
	if d.Direct {
		kind = "direct"
	}
	sb.WriteString(fmt.Sprintf("kind:      %s\n", kind))
	sb.WriteString(fmt.Sprintf("type:      %s\n", d.Type))
	sb.WriteString(fmt.Sprintf("snapshot:  %s\n", d.SHA))
	sb.WriteString(fmt.Sprintf("reference: %s\n", d.Commit))
	sb.WriteString(fmt.Sprintf("url:       %s\n", d.URL))
	if d.Path != "" {
		sb.WriteString(fmt.Sprintf("path:      %s\n", d.Path))
	}
	return sb.String()
}

func displayName(e core.Edge) string {
	if e.Namespace != "" {
		return e.Namespace + ":" + e.Name
	}
	return e.Name
}

// styledPad pads to width before styling so ANSI codes don't break the
// column math.
func styledPad(s lipgloss.Style, text string, width int) string {
	padded := fmt.Sprintf("%-*s", width, text)
	return styled(s, padded)
}
