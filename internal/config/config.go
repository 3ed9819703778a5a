package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/stagefmt/internal/filter"
)

// FileName is the per-repository config file name.
const FileName = ".stagefmt.toml"

// EnvConfigPath overrides config discovery when set.
const EnvConfigPath = "STAGEFMT_CONFIG"

// FilesPlaceholder marks where the filtered paths are spliced into a command template.
// Templates without it get the paths appended.
const FilesPlaceholder = "{files}"

// Defaults for the built-in task.
const (
	DefaultTaskName = "biome"
	DefaultPattern  = "**/*.{js,ts,cjs,mjs,cts,mts,json,jsonc}"
)

// Task maps a glob pattern to the commands run against matching staged paths.
type Task struct {
	Name        string     `toml:"-" json:"name"`
	Description string     `toml:"description,omitempty" json:"description,omitempty"`
	Pattern     string     `toml:"pattern" json:"pattern"`
	Exclude     []string   `toml:"exclude" json:"exclude"`   // directory names; matched per path segment
	Commands    [][]string `toml:"commands" json:"commands"` // argv templates
}

// Config holds the stagefmt configuration
type Config struct {
	Tasks map[string]Task `toml:"tasks"`
	Path  string          `toml:"-"` // file the config was loaded from, empty for defaults
}

// DefaultTask returns the built-in Biome task.
func DefaultTask() Task {
	return Task{
		Name:        DefaultTaskName,
		Description: "Format and check JS/TS/JSON files with Biome",
		Pattern:     DefaultPattern,
		Exclude:     []string{filter.EditorConfigDir},
		Commands: [][]string{
			{"npx", "biome", "format", "--fix", FilesPlaceholder},
			{"npx", "biome", "check", "--write", FilesPlaceholder},
		},
	}
}

// Default returns the default configuration
func Default() Config {
	t := DefaultTask()
	return Config{Tasks: map[string]Task{t.Name: t}}
}

// TaskNames returns the configured task names in sorted order.
func (c *Config) TaskNames() []string {
	names := make([]string, 0, len(c.Tasks))
	for name := range c.Tasks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// OrderedTasks returns the configured tasks sorted by name.
func (c *Config) OrderedTasks() []Task {
	names := c.TaskNames()
	tasks := make([]Task, len(names))
	for i, name := range names {
		tasks[i] = c.Tasks[name]
	}
	return tasks
}

// Find returns the config file to load.
// An explicit path (flag, then STAGEFMT_CONFIG) is returned as-is so that a
// missing file is reported by Load. Otherwise repoRoot and workDir are
// searched for FileName; "" means no file was found.
func Find(explicit, repoRoot, workDir string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	for _, dir := range []string{workDir, repoRoot} {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// Load reads config from path.
// Returns Default() if path is empty.
// A file without any [tasks.NAME] section also yields the default task.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), fmt.Errorf("config file not found: %s", path)
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes and validates TOML config content.
func Parse(data []byte) (Config, error) {
	var raw Config
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	if len(raw.Tasks) == 0 {
		return Default(), nil
	}

	cfg := Config{Tasks: make(map[string]Task, len(raw.Tasks))}
	for name, task := range raw.Tasks {
		task.Name = name
		// Omitted exclude inherits the editor directory; an explicit empty list disables it.
		if !md.IsDefined("tasks", name, "exclude") {
			task.Exclude = []string{filter.EditorConfigDir}
		}
		cfg.Tasks[name] = task
	}

	if err := Validate(cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Marshal renders cfg as TOML.
func Marshal(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return buf.Bytes(), nil
}
