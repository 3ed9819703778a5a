package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `# stagefmt configuration
#
# Each [tasks.NAME] section maps a glob pattern to the commands a pre-commit
# hook runner should execute against the matching staged files.
#
# pattern  - doublestar glob (supports ** and {a,b} alternation)
# exclude  - directory names; a path is dropped when any of its segments
#            matches one of them (default: [".vscode"])
# commands - argv lists; "{files}" is replaced by the filtered paths,
#            otherwise the paths are appended
#
# When every path is excluded no commands are emitted, so the formatter
# never falls back to formatting the whole working tree.

[tasks.biome]
description = "Format and check JS/TS/JSON files with Biome"
pattern = "**/*.{js,ts,cjs,mjs,cts,mts,json,jsonc}"
exclude = [".vscode"]
commands = [
  ["npx", "biome", "format", "--fix", "{files}"],
  ["npx", "biome", "check", "--write", "{files}"],
]

# [tasks.prettier-md]
# description = "Format Markdown"
# pattern = "**/*.md"
# exclude = [".vscode", "node_modules"]
# commands = [["npx", "prettier", "--write"]]
`

// ErrExists is returned by Init when the config file is already present.
var ErrExists = errors.New("config file already exists")

// DefaultTemplate returns the commented default config file content.
func DefaultTemplate() string {
	return defaultConfig
}

// Init writes the default config file into dir.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(dir string, force bool) (string, error) {
	path := filepath.Join(dir, FileName)

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return "", fmt.Errorf("%w: %s", ErrExists, path)
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("check config file: %w", err)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(defaultConfig), 0644); err != nil {
		return "", err
	}
	return path, nil
}
