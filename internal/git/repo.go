package git

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// TopLevel returns the absolute root of the work tree containing dir.
// An empty dir means the current working directory.
func TopLevel(ctx context.Context, dir string) (string, error) {
	output, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not in a git repository: %w", err)
	}
	return filepath.Clean(strings.TrimSpace(string(output))), nil
}

// TopLevelOrEmpty is TopLevel without the error: it returns "" when dir is
// not inside a repository or git is unavailable.
func TopLevelOrEmpty(ctx context.Context, dir string) string {
	if CheckGit() != nil || !IsInsideRepoPath(ctx, dir) {
		return ""
	}
	root, err := TopLevel(ctx, dir)
	if err != nil {
		return ""
	}
	return root
}
