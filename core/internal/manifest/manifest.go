// Package manifest loads, mutates and writes the package manifest document
// (pkgs.json by default). The document is canonicalized on every write: known
// fields in a fixed order, dependencies sorted with unnamespaced entries
// first, paths preserved in declaration order, unknown keys dropped.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/kuchuk-borom-debbarma/GitPkgs/core/internal/util/file"
)

// ErrInvalid is returned for a syntactically malformed manifest file.
var ErrInvalid = errors.New("invalid manifest")

// DefaultFilename is the manifest name unless GIT_PKGS_JSON overrides it.
const DefaultFilename = "pkgs.json"

// fieldOrder is the canonical top-level key order on write.
var fieldOrder = []string{
	"name", "description", "version", "author", "authors", "contributors",
	"license", "repository", "url", "homepage", "funding", "prefix",
	"dependencies", "paths", "engines", "files", "config", "extra", "scripts",
}

var knownField = func() map[string]bool {
	m := make(map[string]bool, len(fieldOrder))
	for _, f := range fieldOrder {
		m[f] = true
	}
	return m
}()

// Filename returns the manifest file name for this process.
func Filename() string {
	if name := os.Getenv("GIT_PKGS_JSON"); name != "" {
		return name
	}
	return DefaultFilename
}

// PathRule is one entry of the paths mapping, in declaration order. A Target
// of "false" suppresses worktree materialization for matching packages.
type PathRule struct {
	Pattern string
	Target  string
}

// Manifest is the typed, canonicalized in-memory form of the document.
type Manifest struct {
	values map[string]any    // recognized top-level fields, except the two below
	deps   map[string]string // "[<ns>:]<pkg>" → rev
	paths  []PathRule        // declaration order matters for routing
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{
		values: make(map[string]any),
		deps:   make(map[string]string),
	}
}

// Load reads the manifest at path. A missing file yields an empty manifest;
// malformed JSON is fatal.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	return m, nil
}

// Parse decodes a manifest document. Unknown top-level keys are dropped.
func Parse(data []byte) (*Manifest, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	m := New()
	for key, val := range raw {
		if !knownField[key] {
			continue
		}
		switch key {
		case "dependencies":
			var deps map[string]string
			if err := json.Unmarshal(val, &deps); err != nil {
				return nil, fmt.Errorf("dependencies: %v", err)
			}
			m.deps = deps
		case "paths":
			rules, err := parseOrderedStrings(val)
			if err != nil {
				return nil, fmt.Errorf("paths: %v", err)
			}
			m.paths = rules
		default:
			var v any
			if err := json.Unmarshal(val, &v); err != nil {
				return nil, err
			}
			if v != nil {
				m.values[key] = v
			}
		}
	}
	if m.deps == nil {
		m.deps = make(map[string]string)
	}
	return m, nil
}

// parseOrderedStrings decodes a JSON object of string values preserving key
// declaration order, which encoding/json maps discard.
func parseOrderedStrings(raw json.RawMessage) ([]PathRule, error) {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("expected object")
	}
	var rules []PathRule
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key := kt.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return nil, fmt.Errorf("value of %q must be a string", key)
		}
		rules = append(rules, PathRule{Pattern: key, Target: value})
	}
	return rules, nil
}

// DepKey builds the dependency map key for a package, namespaced or not.
func DepKey(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + ":" + name
}

// SplitDepKey is the inverse of DepKey.
func SplitDepKey(key string) (ns, name string) {
	if i := strings.Index(key, ":"); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

// Name returns the root package name, "" when unset.
func (m *Manifest) Name() string {
	s, _ := m.Get("name")
	return s
}

// Prefix returns the configured worktree prefix, "" when unset.
func (m *Manifest) Prefix() string {
	s, _ := m.Get("prefix")
	return s
}

// Dependencies returns a copy of the dependency map.
func (m *Manifest) Dependencies() map[string]string {
	out := make(map[string]string, len(m.deps))
	for k, v := range m.deps {
		out[k] = v
	}
	return out
}

// DepKeys returns the dependency keys in canonical order: unnamespaced
// first, then namespaced, each block lexicographic.
func (m *Manifest) DepKeys() []string {
	var plain, spaced []string
	for k := range m.deps {
		if strings.Contains(k, ":") {
			spaced = append(spaced, k)
		} else {
			plain = append(plain, k)
		}
	}
	sort.Strings(plain)
	sort.Strings(spaced)
	return append(plain, spaced...)
}

// Rev returns the recorded revision of a dependency.
func (m *Manifest) Rev(name, ns string) (string, bool) {
	rev, ok := m.deps[DepKey(ns, name)]
	return rev, ok
}

// AddDep upserts a dependency edge.
func (m *Manifest) AddDep(name, rev, ns string) {
	m.deps[DepKey(ns, name)] = rev
}

// RemoveDep deletes a dependency edge.
func (m *Manifest) RemoveDep(name, ns string) {
	delete(m.deps, DepKey(ns, name))
}

// PathRules returns the paths mapping in declaration order.
func (m *Manifest) PathRules() []PathRule {
	return m.paths
}

// Get resolves a dotted path ("name", "config.registry") to its scalar value
// rendered as a string. Non-scalar or absent values report false.
func (m *Manifest) Get(dotted string) (string, bool) {
	segs := strings.Split(dotted, ".")
	if segs[0] == "dependencies" || segs[0] == "paths" {
		return m.getStructured(segs)
	}
	var cur any = m.values[segs[0]]
	for _, seg := range segs[1:] {
		obj, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur = obj[seg]
	}
	switch v := cur.(type) {
	case string:
		return v, true
	case bool:
		if v {
			return "true", true
		}
		return "false", true
	case float64:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", v), "0"), "."), true
	}
	return "", false
}

func (m *Manifest) getStructured(segs []string) (string, bool) {
	if len(segs) != 2 {
		return "", false
	}
	if segs[0] == "dependencies" {
		rev, ok := m.deps[segs[1]]
		return rev, ok
	}
	for _, r := range m.paths {
		if r.Pattern == segs[1] {
			return r.Target, true
		}
	}
	return "", false
}

// Set assigns a scalar at a dotted path, creating intermediate objects.
// "true" and "false" are stored as booleans; setting an already-equal value
// is a no-op.
func (m *Manifest) Set(dotted, value string) error {
	var v any = value
	if value == "true" {
		v = true
	} else if value == "false" {
		v = false
	}

	segs := strings.Split(dotted, ".")
	if !knownField[segs[0]] {
		return fmt.Errorf("unknown manifest field %q", segs[0])
	}
	switch segs[0] {
	case "dependencies":
		if len(segs) != 2 {
			return fmt.Errorf("dependencies entries are set as dependencies.<pkg>")
		}
		m.deps[segs[1]] = value
		return nil
	case "paths":
		if len(segs) != 2 {
			return fmt.Errorf("paths entries are set as paths.<pattern>")
		}
		for i, r := range m.paths {
			if r.Pattern == segs[1] {
				m.paths[i].Target = value
				return nil
			}
		}
		m.paths = append(m.paths, PathRule{Pattern: segs[1], Target: value})
		return nil
	}

	if len(segs) == 1 {
		m.values[segs[0]] = v
		return nil
	}
	obj, ok := m.values[segs[0]].(map[string]any)
	if !ok {
		obj = make(map[string]any)
		m.values[segs[0]] = obj
	}
	for _, seg := range segs[1 : len(segs)-1] {
		next, ok := obj[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			obj[seg] = next
		}
		obj = next
	}
	obj[segs[len(segs)-1]] = v
	return nil
}

// Unset removes the value at a dotted path.
func (m *Manifest) Unset(dotted string) {
	segs := strings.Split(dotted, ".")
	switch segs[0] {
	case "dependencies":
		if len(segs) == 2 {
			delete(m.deps, segs[1])
		}
		return
	case "paths":
		if len(segs) == 2 {
			for i, r := range m.paths {
				if r.Pattern == segs[1] {
					m.paths = append(m.paths[:i], m.paths[i+1:]...)
					return
				}
			}
		}
		return
	}
	if len(segs) == 1 {
		delete(m.values, segs[0])
		return
	}
	obj, ok := m.values[segs[0]].(map[string]any)
	for _, seg := range segs[1 : len(segs)-1] {
		if !ok {
			return
		}
		obj, ok = obj[seg].(map[string]any)
	}
	if ok {
		delete(obj, segs[len(segs)-1])
	}
}

// Encode renders the canonical document.
func (m *Manifest) Encode() []byte {
	var buf strings.Builder
	buf.WriteString("{")
	first := true
	writeKey := func(key string) {
		if !first {
			buf.WriteString(",")
		}
		first = false
		buf.WriteString("\n  ")
		kb, _ := json.Marshal(key)
		buf.Write(kb)
		buf.WriteString(": ")
	}

	for _, field := range fieldOrder {
		switch field {
		case "dependencies":
			if len(m.deps) == 0 {
				continue
			}
			writeKey(field)
			writeOrdered(&buf, m.DepKeys(), func(k string) string { return m.deps[k] })
		case "paths":
			if len(m.paths) == 0 {
				continue
			}
			writeKey(field)
			keys := make([]string, len(m.paths))
			targets := make(map[string]string, len(m.paths))
			for i, r := range m.paths {
				keys[i] = r.Pattern
				targets[r.Pattern] = r.Target
			}
			writeOrdered(&buf, keys, func(k string) string { return targets[k] })
		default:
			v, ok := m.values[field]
			if !ok || v == nil {
				continue
			}
			writeKey(field)
			writeValue(&buf, v, "  ")
		}
	}
	buf.WriteString("\n}\n")
	return []byte(buf.String())
}

// Save atomically writes the canonical document to path.
func (m *Manifest) Save(path string) error {
	if err := file.WriteFileAtomic(path, m.Encode()); err != nil {
		return fmt.Errorf("failed to save manifest: %w", err)
	}
	return nil
}

func writeOrdered(buf *strings.Builder, keys []string, value func(string) string) {
	buf.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		kb, _ := json.Marshal(k)
		buf.Write(kb)
		buf.WriteString(": ")
		vb, _ := json.Marshal(value(k))
		buf.Write(vb)
	}
	buf.WriteString("\n  }")
}

// writeValue renders a decoded JSON value with deterministic (sorted) object
// key order.
func writeValue(buf *strings.Builder, v any, indent string) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			if val[k] == nil {
				continue
			}
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteString("{")
		for i, k := range keys {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n" + indent + "  ")
			kb, _ := json.Marshal(k)
			buf.Write(kb)
			buf.WriteString(": ")
			writeValue(buf, val[k], indent+"  ")
		}
		buf.WriteString("\n" + indent + "}")
	case []any:
		buf.WriteString("[")
		for i, e := range val {
			if i > 0 {
				buf.WriteString(",")
			}
			buf.WriteString("\n" + indent + "  ")
			writeValue(buf, e, indent+"  ")
		}
		buf.WriteString("\n" + indent + "]")
	default:
		b, _ := json.Marshal(val)
		buf.Write(b)
	}
}
