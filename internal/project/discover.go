// Package project walks the analyzed source tree: file discovery,
// environment health checks, context token estimation, and git-derived
// diff scopes.
package project

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"agentscore/internal/paths"
)

// skippedDirs are never descended into during discovery.
var skippedDirs = map[string]bool{
	"__pycache__":  true,
	"node_modules": true,
	"venv":         true,
	".venv":        true,
}

// Listing is the result of one discovery walk.
type Listing struct {
	// Python holds canonical paths of every .py file, sorted
	Python []string

	// All holds canonical paths of every regular file, sorted. Directory
	// entropy is computed over this list, not just Python files.
	All []string
}

// Discover walks root and lists project files. Hidden directories,
// __pycache__, virtualenvs, and node_modules are skipped. The context is
// checked once per directory entry.
func Discover(ctx context.Context, root string) (*Listing, error) {
	listing := &Listing{}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || skippedDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}

		canonical, err := paths.Canonicalize(path, root)
		if err != nil {
			return err
		}
		listing.All = append(listing.All, canonical)
		if strings.HasSuffix(name, ".py") {
			listing.Python = append(listing.Python, canonical)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(listing.All)
	sort.Strings(listing.Python)
	return listing, nil
}
