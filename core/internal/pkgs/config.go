package pkgs

import "fmt"

// ConfigAdd sets a manifest value at a dotted path, creating the manifest
// implicitly on first use. This is how a repository enters the system:
// `config add name <pkg>`.
func ConfigAdd(c *Context, key, value string) error {
	if err := c.Manifest.Set(key, value); err != nil {
		return fmt.Errorf("%w: %v", ErrBadArgs, err)
	}
	return c.SaveManifest()
}

// ConfigGet reads a manifest value at a dotted path.
func ConfigGet(c *Context, key string) (string, error) {
	v, ok := c.Manifest.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s is not set", ErrBadArgs, key)
	}
	return v, nil
}

// ConfigRm removes a manifest value at a dotted path.
func ConfigRm(c *Context, key string) error {
	c.Manifest.Unset(key)
	return c.SaveManifest()
}
