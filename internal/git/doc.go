// Package git provides the few git lookups stagefmt needs, via the git CLI.
//
// Calls go through [os/exec] rather than a Go git library so that the
// user's git configuration (safe.directory, worktrees, GIT_DIR overrides)
// is honoured exactly as the hook runner sees it.
//
// stagefmt never reads the index: the staged paths always come from the
// hook runner. The repository root is only used to locate .stagefmt.toml.
package git
