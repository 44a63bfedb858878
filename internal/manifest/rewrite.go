package manifest

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

// Options controls how a starter's manifest becomes the new project's manifest.
type Options struct {
	Description  string   // replaces the starter's description; empty leaves it
	Author       string   // set when non-empty
	StripFields  []string // top-level keys that only make sense for the starter itself
	StripScripts []string // install hooks used by the starter's own workflow
}

// DefaultOptions strips the starter's repository links and its install hooks.
func DefaultOptions() Options {
	return Options{
		Description:  "My Gatsby site",
		StripFields:  []string{"repository", "bugs"},
		StripScripts: []string{"preinstall", "postinstall"},
	}
}

// Rewrite gives the manifest in projectPath its new identity and writes it back.
func Rewrite(fsys afero.Fs, projectPath, name string, opts Options) (*Manifest, error) {
	m, err := Load(fsys, projectPath)
	if err != nil {
		return nil, err
	}

	fields := []Field{{Key: "name", Value: PackageName(name)}}
	if opts.Description != "" {
		fields = append(fields, Field{Key: "description", Value: opts.Description})
	}
	if opts.Author != "" {
		fields = append(fields, Field{Key: "author", Value: opts.Author})
	}
	if err := m.Merge(fields...); err != nil {
		return nil, fmt.Errorf("rewrite manifest: %w", err)
	}
	if err := m.Strip(opts.StripFields...); err != nil {
		return nil, fmt.Errorf("rewrite manifest: %w", err)
	}
	if err := m.StripScripts(opts.StripScripts...); err != nil {
		return nil, fmt.Errorf("rewrite manifest: %w", err)
	}

	if err := m.Save(fsys, projectPath); err != nil {
		return nil, err
	}
	return m, nil
}

// PackageName turns a directory name into a valid npm package name:
// kebab-case, so "MySite" and "my site" both become "my-site", with runs of
// other characters collapsed into a single dash.
func PackageName(dir string) string {
	var b strings.Builder
	// dash: last written byte is a dash; prev: previous input rune, to spot camelCase boundaries
	dash := false
	var prev rune
	for _, r := range dir {
		keep := r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '.' || r == '_' || r == '~')
		if keep {
			// Lower or digit followed by upper starts a new word
			if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) && !dash {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			dash = false
		} else if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
		prev = r
	}

	name := strings.Trim(b.String(), "-._")
	if name == "" {
		return "my-project"
	}
	return name
}
