package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Validate checks every task in cfg and joins all problems into one error.
func Validate(cfg Config) error {
	var errs []error
	for _, name := range cfg.TaskNames() {
		if err := validateTask(cfg.Tasks[name]); err != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func validateTask(t Task) error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if err := validatePattern(t.Pattern); err != nil {
		return err
	}
	for i, dir := range t.Exclude {
		if err := validateExcludeDir(dir); err != nil {
			return fmt.Errorf("exclude[%d]: %w", i, err)
		}
	}
	if len(t.Commands) == 0 {
		return errors.New("at least one command is required")
	}
	for i, argv := range t.Commands {
		if len(argv) == 0 || strings.TrimSpace(argv[0]) == "" {
			return fmt.Errorf("commands[%d]: program cannot be empty", i)
		}
		if argv[0] == FilesPlaceholder {
			return fmt.Errorf("commands[%d]: program cannot be %s", i, FilesPlaceholder)
		}
	}
	return nil
}

// validatePattern checks that pattern is non-empty doublestar syntax.
func validatePattern(pattern string) error {
	if pattern == "" {
		return errors.New("pattern cannot be empty")
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid pattern %q", pattern)
	}
	return nil
}

// validateExcludeDir requires a single directory name, since exclusion is
// matched against individual path segments.
func validateExcludeDir(dir string) error {
	switch {
	case dir == "":
		return errors.New("directory name cannot be empty")
	case dir == "." || dir == "..":
		return fmt.Errorf("invalid directory name %q", dir)
	case strings.ContainsAny(dir, `/\`):
		return fmt.Errorf("%q must be a single directory name, not a path", dir)
	}
	return nil
}

// FormatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func FormatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
