// Package manifest edits a project's package.json as an ordered document.
//
// The raw JSON is kept as the source of truth and edited in place with
// tidwall/sjson, so fields this package does not touch keep their position
// and value exactly. New fields are appended after the existing ones.
package manifest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// FileName is the manifest file at the root of a project.
const FileName = "package.json"

// ErrManifestMissing means the project has no usable package.json.
var ErrManifestMissing = errors.New("manifest missing or unparsable")

// Field is a single key/value pair used by Merge.
type Field struct {
	Key   string
	Value any
}

// Manifest is an ordered JSON object.
type Manifest struct {
	raw []byte
}

// Parse validates data as a JSON object.
func Parse(data []byte) (*Manifest, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrManifestMissing)
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrManifestMissing)
	}
	return &Manifest{raw: append([]byte(nil), data...)}, nil
}

// Load reads package.json from projectPath.
func Load(fsys afero.Fs, projectPath string) (*Manifest, error) {
	path := filepath.Join(projectPath, FileName)
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestMissing, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes the manifest to projectPath/package.json.
func (m *Manifest) Save(fsys afero.Fs, projectPath string) error {
	path := filepath.Join(projectPath, FileName)
	if err := afero.WriteFile(fsys, path, m.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Bytes returns the document pretty-printed with two-space indentation.
func (m *Manifest) Bytes() []byte {
	return pretty.Pretty(m.raw)
}

// Keys lists the top-level keys in document order.
func (m *Manifest) Keys() []string {
	var keys []string
	gjson.ParseBytes(m.raw).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

// Has reports whether the nested key path exists.
func (m *Manifest) Has(path ...string) bool {
	return gjson.GetBytes(m.raw, joinPath(path)).Exists()
}

// String returns the value at path as a string ("" when absent).
func (m *Manifest) String(path ...string) string {
	return gjson.GetBytes(m.raw, joinPath(path)).String()
}

// Set assigns value to a top-level key, keeping its position if it already exists.
func (m *Manifest) Set(key string, value any) error {
	raw, err := sjson.SetBytes(m.raw, joinPath([]string{key}), value)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	m.raw = raw
	return nil
}

// Merge sets every field in order.
func (m *Manifest) Merge(fields ...Field) error {
	for _, f := range fields {
		if err := m.Set(f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the value at the nested key path. Absent paths are ignored.
func (m *Manifest) Delete(path ...string) error {
	if !m.Has(path...) {
		return nil
	}
	raw, err := sjson.DeleteBytes(m.raw, joinPath(path))
	if err != nil {
		return fmt.Errorf("delete %q: %w", strings.Join(path, "."), err)
	}
	m.raw = raw
	return nil
}

// Strip removes top-level keys.
func (m *Manifest) Strip(keys ...string) error {
	for _, k := range keys {
		if err := m.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

// StripScripts removes entries from the "scripts" object.
func (m *Manifest) StripScripts(names ...string) error {
	for _, n := range names {
		if err := m.Delete("scripts", n); err != nil {
			return err
		}
	}
	return nil
}

// joinPath builds a gjson/sjson path from literal key segments.
func joinPath(segments []string) string {
	escaped := make([]string, len(segments))
	for i, s := range segments {
		escaped[i] = escapeKey(s)
	}
	return strings.Join(escaped, ".")
}

// escapeKey escapes the characters the path syntax treats specially.
func escapeKey(key string) string {
	var b strings.Builder
	for _, r := range key {
		switch r {
		case '\\', '.', '*', '?', '|', '#', '@':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
