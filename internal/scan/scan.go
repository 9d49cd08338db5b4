// Package scan enumerates the file groups a triage run operates on. Process
// mode lists a single directory and groups files by base name; gather mode
// lists the files sitting in recognized immediate subfolders. Base names
// that differ only by case are distinct groups on case-sensitive
// filesystems and collapse on case-insensitive ones; the engine follows the
// host filesystem and does not special-case this.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Group is one image plus its optional sidecar, treated as a unit for moves.
type Group struct {
	// Base is the shared filename without extension.
	Base string
	// Primary holds the asset paths matching the configured extensions.
	// Usually one file; raw+jpeg pairs produce two.
	Primary []string
	// Sidecar is the companion metadata path, empty when none exists.
	Sidecar string
}

// Files returns every path in the group, primaries first.
func (g Group) Files() []string {
	files := make([]string, 0, len(g.Primary)+1)
	files = append(files, g.Primary...)
	if g.Sidecar != "" {
		files = append(files, g.Sidecar)
	}
	return files
}

// Subfolder is one directory found by gather-mode enumeration.
type Subfolder struct {
	Name  string
	Path  string
	Files []string
}

// Groups lists the files directly in dir (no recursion) and groups them by
// base name. Only groups owning at least one primary-extension file are
// returned, each paired with its sidecar when one exists. Results are sorted
// by base name so runs are reproducible. An empty directory yields an empty
// slice.
func Groups(dir string, primaryExts map[string]bool, sidecarExt string) ([]Group, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	byBase := make(map[string]*Group)
	group := func(base string) *Group {
		g, ok := byBase[base]
		if !ok {
			g = &Group{Base: base}
			byBase[base] = g
		}
		return g
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		base := strings.TrimSuffix(name, filepath.Ext(name))
		path := filepath.Join(dir, name)

		switch {
		case primaryExts[ext]:
			g := group(base)
			g.Primary = append(g.Primary, path)
		case ext == sidecarExt:
			group(base).Sidecar = path
		}
	}

	groups := make([]Group, 0, len(byBase))
	for _, g := range byBase {
		if len(g.Primary) == 0 {
			// Orphaned sidecar, nothing to classify.
			continue
		}
		sort.Strings(g.Primary)
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Base < groups[j].Base })
	return groups, nil
}

// Subfolders lists the immediate subdirectories of dir whose names satisfy
// recognized, together with the files directly inside each. Deeper nesting
// is not traversed. Results are sorted by subfolder name, files by name.
func Subfolders(dir string, recognized func(string) bool) ([]Subfolder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	var folders []Subfolder
	for _, entry := range entries {
		if !entry.IsDir() || !recognized(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		inner, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", path, err)
		}
		folder := Subfolder{Name: entry.Name(), Path: path}
		for _, file := range inner {
			if file.IsDir() {
				continue
			}
			folder.Files = append(folder.Files, filepath.Join(path, file.Name()))
		}
		sort.Strings(folder.Files)
		folders = append(folders, folder)
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return folders, nil
}
