// Package filter removes candidate paths that live inside excluded directories.
//
// Matching is done per path segment, so a path is excluded when any of its
// segments equals the directory name. This also covers the directory
// itself (".vscode") and a trailing segment ("x/.vscode"), which a
// prefix-or-interior check on "dir/" would let through.
package filter

import (
	"path/filepath"
	"strings"
)

// EditorConfigDir is the editor configuration directory excluded by default.
const EditorConfigDir = ".vscode"

// Segments splits a path into its slash-separated components.
// Backslashes are treated as separators on Windows only; empty and "."
// components are dropped.
func Segments(path string) []string {
	parts := strings.Split(filepath.ToSlash(path), "/")
	segs := parts[:0]
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		segs = append(segs, p)
	}
	return segs
}

// InDir reports whether path is dir itself or lives anywhere below a
// directory named dir, at the top level or nested.
func InDir(path, dir string) bool {
	for _, seg := range Segments(path) {
		if seg == dir {
			return true
		}
	}
	return false
}

// InAnyDir reports whether path is inside any of dirs.
func InAnyDir(path string, dirs []string) bool {
	for _, dir := range dirs {
		if InDir(path, dir) {
			return true
		}
	}
	return false
}

// Exclude returns the paths that are not inside any of dirs, keeping their
// order. It returns nil when nothing survives.
func Exclude(paths []string, dirs ...string) []string {
	var kept []string
	for _, p := range paths {
		if InAnyDir(p, dirs) {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
