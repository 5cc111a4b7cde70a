// Package paths normalizes file paths relative to the analyzed project root
// and derives module identifiers from them.
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Canonicalize converts a path to a project-relative canonical path
// - Resolves symlinks to real paths
// - Makes path relative to the project root
// - Converts backslashes to forward slashes
func Canonicalize(path string, projectRoot string) (string, error) {
	// Resolve symlinks
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		// If the file doesn't exist yet, use the path as-is
		if os.IsNotExist(err) {
			resolved = path
		} else {
			return "", err
		}
	}

	rootResolved, err := filepath.EvalSymlinks(projectRoot)
	if err != nil {
		if os.IsNotExist(err) {
			rootResolved = projectRoot
		} else {
			return "", err
		}
	}

	relativePath, err := filepath.Rel(rootResolved, resolved)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(relativePath), nil
}

// IsWithinProject checks if a path is inside the project root
func IsWithinProject(path string, projectRoot string) bool {
	canonical, err := Canonicalize(path, projectRoot)
	if err != nil {
		return false
	}

	// Path is outside the project if it starts with ..
	return !strings.HasPrefix(canonical, "..")
}

// Normalize converts backslashes to forward slashes
// This is useful for paths that are already relative but need normalization
func Normalize(path string) string {
	return filepath.ToSlash(path)
}

// JoinProject joins the project root with a canonical path
func JoinProject(projectRoot string, canonicalPath string) string {
	normalizedPath := strings.ReplaceAll(canonicalPath, "\\", "/")
	parts := strings.Split(normalizedPath, "/")
	return filepath.Join(append([]string{projectRoot}, parts...)...)
}

// ModuleID derives the dotted module identifier for a canonical Python file
// path. "pkg/sub/mod.py" becomes "pkg.sub.mod" and a package __init__.py
// resolves to the package itself ("pkg/__init__.py" -> "pkg"). The result is
// stable across runs because canonical paths are.
func ModuleID(canonicalPath string) string {
	p := strings.TrimSuffix(Normalize(canonicalPath), ".py")
	p = strings.TrimSuffix(p, "/__init__")
	if p == "__init__" {
		// Root-level package marker
		return ""
	}
	return strings.ReplaceAll(p, "/", ".")
}
