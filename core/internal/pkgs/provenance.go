package pkgs

import (
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Trailer keys carried by every orphan commit.
const (
	TrailerName     = "git-pkgs-name"
	TrailerType     = "git-pkgs-type"
	TrailerRevision = "git-pkgs-revision"
	TrailerCommit   = "git-pkgs-commit"
	TrailerURL      = "git-pkgs-url"
)

// Provenance is the identity an orphan commit carries in its trailers.
type Provenance struct {
	Name     string
	Type     string
	Revision string
	Commit   string // the origin sha the orphan was derived from
	URL      string
}

// readProvenance extracts the provenance trailers of a commit. Absent
// trailers come back as empty strings.
func readProvenance(dir, commit string) Provenance {
	tr := gitutil.ReadTrailers(dir, commit,
		TrailerName, TrailerType, TrailerRevision, TrailerCommit, TrailerURL)
	return Provenance{
		Name:     tr[TrailerName],
		Type:     tr[TrailerType],
		Revision: tr[TrailerRevision],
		Commit:   tr[TrailerCommit],
		URL:      tr[TrailerURL],
	}
}

func (p Provenance) trailers() [][2]string {
	return [][2]string{
		{TrailerName, p.Name},
		{TrailerType, p.Type},
		{TrailerRevision, p.Revision},
		{TrailerCommit, p.Commit},
		{TrailerURL, p.URL},
	}
}
