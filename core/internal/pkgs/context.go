package pkgs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/manifest"
	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/route"
	gitutil "github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/git"
)

// Recognized strategies for reconciling conflicting revisions.
const (
	StrategyMax         = "max"
	StrategyMin         = "min"
	StrategyKeep        = "keep"
	StrategyUpdate      = "update"
	StrategyInteractive = "interactive"
)

// PromptPolicy decides between two candidate revisions of a package under
// the interactive strategy. Injected so the resolver never talks to a TTY.
type PromptPolicy interface {
	Pick(pkg, existing, incoming string) (string, error)
}

// Options carries per-invocation overrides. Zero values mean "not given";
// the corresponding setting falls back through manifest, environment and
// hard-coded defaults.
type Options struct {
	Prefix    string
	Revision  string
	Type      string
	Strategy  string
	Namespace string
	Message   string
	Depth     int
	Quiet     bool
	Prompt    PromptPolicy
}

// Context is the configuration of one command invocation. It is constructed
// once at startup and threaded explicitly through every operation; operations
// update its Manifest (and clone its Root) as they go.
type Context struct {
	Dir          string // working tree root
	ManifestPath string
	Manifest     *manifest.Manifest
	Root         string // root package name, may be "" until required

	Prefix     string
	DefaultRev string
	Type       string
	Strategy   string
	Namespace  string
	Message    string
	Depth      int
	Quiet      bool
	Prompt     PromptPolicy

	stripSuffix string
}

// NewContext locates the enclosing repository, loads its manifest and layers
// the configuration: CLI override → manifest → environment → hard-coded
// default.
func NewContext(dir string, opts Options) (*Context, error) {
	root, err := gitutil.FindRepoRoot(dir)
	if err != nil {
		return nil, err
	}

	mpath := filepath.Join(root, manifest.Filename())
	m, err := manifest.Load(mpath)
	if err != nil {
		return nil, err
	}

	mval := func(key string) string {
		v, _ := m.Get(key)
		return v
	}

	c := &Context{
		Dir:          root,
		ManifestPath: mpath,
		Manifest:     m,
		Root:         m.Name(),
		Prefix:       layered(opts.Prefix, m.Prefix(), os.Getenv("PKGS_DEFAULT_PREFIX"), "pkgs"),
		DefaultRev:   layered(opts.Revision, mval("config.revision"), os.Getenv("PKGS_DEFAULT_REVISION"), "HEAD"),
		Type:         layered(opts.Type, mval("config.type"), os.Getenv("PKGS_DEFAULT_TYPE"), "pkg"),
		Strategy:     layered(opts.Strategy, mval("config.strategy"), os.Getenv("PKGS_DEFAULT_STRATEGY"), StrategyMax),
		Namespace:    opts.Namespace,
		Message:      opts.Message,
		Depth:        opts.Depth,
		Quiet:        opts.Quiet,
		Prompt:       opts.Prompt,
	}
	if os.Getenv("PKGS_STRIP_REF_SUFFIX") != "" {
		c.stripSuffix = os.Getenv("PKGS_REF_SUFFIX")
	}

	switch c.Strategy {
	case StrategyMax, StrategyMin, StrategyKeep, StrategyUpdate, StrategyInteractive:
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrBadArgs, c.Strategy)
	}
	if c.Depth == 0 {
		c.Depth = 1
	}
	return c, nil
}

// layered returns the first non-empty value.
func layered(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// RequireRoot returns ErrNoPkgName when the manifest carries no root package
// name.
func (c *Context) RequireRoot() error {
	if c.Root == "" {
		return ErrNoPkgName
	}
	return nil
}

// Router builds the path router from the active manifest configuration.
func (c *Context) Router() route.Router {
	return route.Router{
		Root:        c.Root,
		Prefix:      c.Prefix,
		Rules:       c.Manifest.PathRules(),
		StripSuffix: c.stripSuffix,
	}
}

// SaveManifest writes the manifest back to the working tree.
func (c *Context) SaveManifest() error {
	return c.Manifest.Save(c.ManifestPath)
}

// OriginURL returns the repository's origin URL, falling back to its local
// path when no remote is configured.
func (c *Context) OriginURL() string {
	if url := gitutil.RemoteURL(c.Dir, "origin"); url != "" {
		return url
	}
	return c.Dir
}
