package tasks

import (
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/raphi011/stagefmt/internal/config"
)

// Select returns the named tasks in the order given, or all tasks sorted by
// name when names is empty. Duplicate names are collapsed.
// Unknown names produce an error listing suggestions and available tasks.
func Select(cfg config.Config, names []string) ([]config.Task, error) {
	if len(names) == 0 {
		return cfg.OrderedTasks(), nil
	}

	available := cfg.TaskNames()
	var selected []config.Task
	var seen []string
	for _, name := range names {
		if slices.Contains(seen, name) {
			continue
		}
		task, ok := cfg.Tasks[name]
		if !ok {
			return nil, unknownTaskError(name, available)
		}
		seen = append(seen, name)
		selected = append(selected, task)
	}
	return selected, nil
}

func unknownTaskError(name string, available []string) error {
	if len(available) == 0 {
		return fmt.Errorf("unknown task %q (no tasks configured)", name)
	}
	if s := Suggest(name, available); len(s) > 0 {
		return fmt.Errorf("unknown task %q, did you mean %s?", name, config.FormatOptions(s))
	}
	return fmt.Errorf("unknown task %q (available: %s)", name, config.FormatOptions(available))
}

// Suggest returns task names that fuzzily match name, best match first.
// Both directions are tried so abbreviations ("bio") and overlong
// spellings ("biomes") find "biome".
func Suggest(name string, candidates []string) []string {
	var out []string
	for _, m := range fuzzy.Find(name, candidates) {
		out = append(out, m.Str)
	}
	for _, c := range candidates {
		if slices.Contains(out, c) {
			continue
		}
		if len(fuzzy.Find(c, []string{name})) > 0 {
			out = append(out, c)
		}
	}
	return out
}
