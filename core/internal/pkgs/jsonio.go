package pkgs

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// ExportDoc is the portable description of the active dependency graph.
type ExportDoc struct {
	Name     string          `json:"name"`
	Revision string          `json:"revision"`
	Packages []ExportPackage `json:"packages"`
}

// ExportPackage describes one active edge with enough provenance to replay
// the import elsewhere.
type ExportPackage struct {
	Name        string `json:"name"`
	Revision    string `json:"revision"`
	Author      string `json:"author"`
	Email       string `json:"email"`
	Description string `json:"description"`
	Snapshot    string `json:"snapshot"`  // the orphan commit in this repository
	Reference   string `json:"reference"` // the origin sha it was derived from
	URL         string `json:"url"`
	Mirror      string `json:"mirror"` // this repository, which also serves the package
}

// Export renders the HEAD graph as a JSON document.
func Export(c *Context) ([]byte, error) {
	edges, err := Status(c)
	if err != nil {
		return nil, err
	}

	doc := ExportDoc{
		Name:     c.Root,
		Revision: gitutil.Describe(c.Dir),
		Packages: []ExportPackage{},
	}
	mirror := c.OriginURL()
	for _, e := range edges {
		prov := readProvenance(c.Dir, e.SHA)
		author, email := gitutil.CommitAuthor(c.Dir, e.SHA)
		desc, _ := nodeManifest(c, e.Name, e.Revision).Get("description")
		doc.Packages = append(doc.Packages, ExportPackage{
			Name:        e.Name,
			Revision:    e.Revision,
			Author:      author,
			Email:       email,
			Description: desc,
			Snapshot:    e.SHA,
			Reference:   prov.Commit,
			URL:         prov.URL,
			Mirror:      mirror,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import replays adds for every package of an export document.
func Import(c *Context, data []byte) error {
	if err := c.RequireRoot(); err != nil {
		return err
	}

	var doc struct {
		Packages []struct {
			Name     string `json:"name"`
			Revision string `json:"revision"`
			URL      string `json:"url"`
		} `json:"packages"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrBadArgs, err)
	}

	for _, p := range doc.Packages {
		if p.Name == "" {
			return fmt.Errorf("%w: package entry without a name", ErrBadArgs)
		}
		log.Info().Msgf("importing %s@%s", p.Name, p.Revision)
		if err := Add(c, p.Name, p.Revision, p.URL); err != nil {
			return err
		}
	}
	return nil
}
