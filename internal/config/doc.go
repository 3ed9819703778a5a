// Package config handles loading and validation of stagefmt configuration.
//
// Configuration is read from .stagefmt.toml. Without a file the built-in
// Biome task is used, which mirrors the classic lint-staged setup:
//
//	[tasks.biome]
//	pattern = "**/*.{js,ts,cjs,mjs,cts,mts,json,jsonc}"
//	exclude = [".vscode"]
//	commands = [
//	  ["npx", "biome", "format", "--fix", "{files}"],
//	  ["npx", "biome", "check", "--write", "{files}"],
//	]
//
// # Configuration Sources (highest priority first)
//
//   - --config flag
//   - STAGEFMT_CONFIG env var
//   - .stagefmt.toml in the current directory
//   - .stagefmt.toml at the repository root
//   - built-in defaults
//
// An explicitly named file that does not exist is an error; a missing
// discovered file is not.
//
// # Tasks
//
// A file that defines any [tasks.NAME] section replaces the defaults
// entirely. Omitting exclude keeps the ".vscode" exclusion; set
// exclude = [] to disable it. Unknown keys are rejected.
package config
