// Package cmd provides helpers for executing external commands with proper error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users. Every call
// is logged through the context logger when verbose output is enabled.
//
// # Usage
//
//	out, err := cmd.OutputContext(ctx, dir, "git", "rev-parse", "--show-toplevel")
//	if err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("find repo root: %w", err)
//	}
//
// stagefmt itself never runs the formatter commands it computes; this
// package only serves lookups such as locating the repository root.
package cmd
