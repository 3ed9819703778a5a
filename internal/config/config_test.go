package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if got := cfg.TaskNames(); !slices.Equal(got, []string{DefaultTaskName}) {
		t.Fatalf("TaskNames() = %q, want [%q]", got, DefaultTaskName)
	}

	task := cfg.Tasks[DefaultTaskName]
	if task.Pattern != DefaultPattern {
		t.Errorf("Pattern = %q, want %q", task.Pattern, DefaultPattern)
	}
	if !slices.Equal(task.Exclude, []string{".vscode"}) {
		t.Errorf("Exclude = %q, want [.vscode]", task.Exclude)
	}
	if len(task.Commands) != 2 {
		t.Fatalf("len(Commands) = %d, want 2", len(task.Commands))
	}
	if got := strings.Join(task.Commands[0], " "); got != "npx biome format --fix {files}" {
		t.Errorf("Commands[0] = %q", got)
	}
	if got := strings.Join(task.Commands[1], " "); got != "npx biome check --write {files}" {
		t.Errorf("Commands[1] = %q", got)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(Default()) = %v, want nil", err)
	}
}

func TestDefault_ReturnsFreshCopies(t *testing.T) {
	t.Parallel()

	a := Default()
	a.Tasks[DefaultTaskName].Commands[0][0] = "mutated"

	b := Default()
	if b.Tasks[DefaultTaskName].Commands[0][0] != "npx" {
		t.Error("Default() shares command slices between calls")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Path != "" {
		t.Errorf("Path = %q, want empty", cfg.Path)
	}
	if _, ok := cfg.Tasks[DefaultTaskName]; !ok {
		t.Error("Load(\"\") should return the default task")
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("Load(missing) error = %v, want not found error", err)
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeConfig(t, dir, `
[tasks.prettier]
description = "Markdown"
pattern = "**/*.md"
exclude = ["node_modules"]
commands = [["npx", "prettier", "--write"]]

[tasks.gofmt]
pattern = "**/*.go"
commands = [["gofmt", "-w", "{files}"]]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if got := cfg.TaskNames(); !slices.Equal(got, []string{"gofmt", "prettier"}) {
		t.Errorf("TaskNames() = %q, want [gofmt prettier]", got)
	}

	prettier := cfg.Tasks["prettier"]
	if prettier.Name != "prettier" {
		t.Errorf("Name = %q, want prettier", prettier.Name)
	}
	if prettier.Description != "Markdown" {
		t.Errorf("Description = %q, want Markdown", prettier.Description)
	}
	if !slices.Equal(prettier.Exclude, []string{"node_modules"}) {
		t.Errorf("prettier Exclude = %q, want [node_modules]", prettier.Exclude)
	}

	// Omitted exclude inherits the editor directory
	if got := cfg.Tasks["gofmt"].Exclude; !slices.Equal(got, []string{".vscode"}) {
		t.Errorf("gofmt Exclude = %q, want [.vscode]", got)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		content    string
		wantErr    string
		wantTasks  []string
		checkTasks func(t *testing.T, cfg Config)
	}{
		{
			name:      "empty file uses defaults",
			content:   "",
			wantTasks: []string{DefaultTaskName},
		},
		{
			name:      "comments only uses defaults",
			content:   "# nothing here\n",
			wantTasks: []string{DefaultTaskName},
		},
		{
			name: "explicit empty exclude disables exclusion",
			content: `[tasks.all]
pattern = "**/*"
exclude = []
commands = [["echo"]]
`,
			wantTasks: []string{"all"},
			checkTasks: func(t *testing.T, cfg Config) {
				if got := cfg.Tasks["all"].Exclude; len(got) != 0 {
					t.Errorf("Exclude = %q, want empty", got)
				}
			},
		},
		{
			name:    "invalid toml",
			content: "[tasks.x\n",
			wantErr: "failed to parse config",
		},
		{
			name: "unknown key",
			content: `[tasks.x]
pattern = "*.ts"
commands = [["echo"]]
colour = "red"
`,
			wantErr: "unknown config keys: tasks.x.colour",
		},
		{
			name: "missing pattern",
			content: `[tasks.x]
commands = [["echo"]]
`,
			wantErr: `task "x": pattern cannot be empty`,
		},
		{
			name: "invalid pattern",
			content: `[tasks.x]
pattern = "**/*.{ts"
commands = [["echo"]]
`,
			wantErr: "invalid pattern",
		},
		{
			name: "no commands",
			content: `[tasks.x]
pattern = "*.ts"
`,
			wantErr: "at least one command is required",
		},
		{
			name: "empty command",
			content: `[tasks.x]
pattern = "*.ts"
commands = [[]]
`,
			wantErr: "commands[0]: program cannot be empty",
		},
		{
			name: "placeholder as program",
			content: `[tasks.x]
pattern = "*.ts"
commands = [["{files}"]]
`,
			wantErr: "program cannot be {files}",
		},
		{
			name: "exclude path instead of name",
			content: `[tasks.x]
pattern = "*.ts"
exclude = ["a/.vscode"]
commands = [["echo"]]
`,
			wantErr: "exclude[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Parse([]byte(tt.content))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Parse() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %q, want to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := cfg.TaskNames(); !slices.Equal(got, tt.wantTasks) {
				t.Errorf("TaskNames() = %q, want %q", got, tt.wantTasks)
			}
			if tt.checkTasks != nil {
				tt.checkTasks(t, cfg)
			}
		})
	}
}

func TestFind(t *testing.T) {
	// No t.Parallel: t.Setenv mutates process env
	repo := t.TempDir()
	sub := filepath.Join(repo, "web")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.toml")
		if got := Find("/flag/config.toml", repo, sub); got != "/flag/config.toml" {
			t.Errorf("Find = %q, want flag path", got)
		}
	})

	t.Run("env var", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "/env/config.toml")
		if got := Find("", repo, sub); got != "/env/config.toml" {
			t.Errorf("Find = %q, want env path", got)
		}
	})

	t.Run("nothing found", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		if got := Find("", repo, sub); got != "" {
			t.Errorf("Find = %q, want empty", got)
		}
	})

	t.Run("repo root", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		want := writeConfig(t, repo, "")
		if got := Find("", repo, sub); got != want {
			t.Errorf("Find = %q, want %q", got, want)
		}
	})

	t.Run("work dir before repo root", func(t *testing.T) {
		t.Setenv(EnvConfigPath, "")
		want := writeConfig(t, sub, "")
		if got := Find("", repo, sub); got != want {
			t.Errorf("Find = %q, want %q", got, want)
		}
	})
}

func TestMarshal_RoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) error = %v\n%s", err, data)
	}
	got := cfg.Tasks[DefaultTaskName]
	want := DefaultTask()
	if got.Pattern != want.Pattern || !slices.Equal(got.Exclude, want.Exclude) || len(got.Commands) != len(want.Commands) {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestDefaultTemplate(t *testing.T) {
	t.Parallel()

	var raw map[string]any
	if _, err := toml.Decode(DefaultTemplate(), &raw); err != nil {
		t.Fatalf("default template is not valid TOML: %v", err)
	}

	cfg, err := Parse([]byte(DefaultTemplate()))
	if err != nil {
		t.Fatalf("Parse(DefaultTemplate()) error = %v", err)
	}
	got := cfg.Tasks[DefaultTaskName]
	want := DefaultTask()
	if got.Pattern != want.Pattern {
		t.Errorf("template pattern = %q, want %q", got.Pattern, want.Pattern)
	}
	for i := range want.Commands {
		if !slices.Equal(got.Commands[i], want.Commands[i]) {
			t.Errorf("template commands[%d] = %q, want %q", i, got.Commands[i], want.Commands[i])
		}
	}
}

func TestInit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := Init(dir, false)
	if err != nil {
		t.Fatalf("Init error = %v", err)
	}
	if path != filepath.Join(dir, FileName) {
		t.Errorf("Init path = %q", path)
	}

	if _, err := Init(dir, false); !errors.Is(err, ErrExists) {
		t.Errorf("second Init error = %v, want already exists", err)
	}

	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Init(dir, true); err != nil {
		t.Fatalf("Init(force) error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != DefaultTemplate() {
		t.Error("Init(force) did not overwrite the file")
	}
}

func TestInit_StatFailure(t *testing.T) {
	t.Parallel()

	// A regular file where the directory should be makes Stat fail with
	// ENOTDIR instead of reporting the config as missing.
	notDir := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(notDir, nil, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Init(notDir, false)
	if err == nil {
		t.Fatal("Init error = nil, want error")
	}
	if errors.Is(err, ErrExists) {
		t.Errorf("Init error = %v, should not report an existing file", err)
	}
	if !strings.Contains(err.Error(), "check config file") {
		t.Errorf("Init error = %v, want stat failure", err)
	}
}

func TestFormatOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts []string
		want string
	}{
		{[]string{"a"}, `"a"`},
		{[]string{"a", "b"}, `"a" or "b"`},
		{[]string{"a", "b", "c"}, `"a", "b", or "c"`},
	}

	for _, tt := range tests {
		if got := FormatOptions(tt.opts); got != tt.want {
			t.Errorf("FormatOptions(%q) = %q, want %q", tt.opts, got, tt.want)
		}
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{Path: "/repo/.stagefmt.toml"}
		ctx := WithConfig(context.Background(), cfg)
		if got := FromContext(ctx); got != cfg {
			t.Error("FromContext did not return the stored config")
		}
	})

	t.Run("nil when not set", func(t *testing.T) {
		t.Parallel()
		if got := FromContext(context.Background()); got != nil {
			t.Errorf("FromContext on empty context = %v, want nil", got)
		}
	})
}

func TestWithWorkDir_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		ctx := WithWorkDir(context.Background(), "/custom/path")
		if got := WorkDirFromContext(ctx); got != "/custom/path" {
			t.Errorf("WorkDirFromContext = %q, want %q", got, "/custom/path")
		}
	})

	t.Run("fallback to getwd when empty", func(t *testing.T) {
		t.Parallel()
		ctx := WithWorkDir(context.Background(), "")
		wd, _ := os.Getwd()
		if got := WorkDirFromContext(ctx); got != wd {
			t.Errorf("WorkDirFromContext = %q, want %q (os.Getwd)", got, wd)
		}
	})
}
