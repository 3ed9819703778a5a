// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/stagefmt/internal/config"
	"github.com/raphi011/stagefmt/internal/tasks"
)

// TaskTableHeaders are the column headers of RenderTaskTable.
var TaskTableHeaders = []string{"TASK", "PATTERN", "EXCLUDE", "COMMANDS"}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// TaskTableRow formats one task; templates are shown one per line.
func TaskTableRow(t config.Task) []string {
	cmds := make([]string, len(t.Commands))
	for i, argv := range t.Commands {
		cmds[i] = tasks.Command{Args: argv}.String()
	}
	exclude := strings.Join(t.Exclude, ", ")
	if exclude == "" {
		exclude = "-"
	}
	return []string{t.Name, t.Pattern, exclude, strings.Join(cmds, "\n")}
}

// RenderTaskTable renders the tasks of cfg sorted by name.
func RenderTaskTable(cfg config.Config) string {
	ordered := cfg.OrderedTasks()
	rows := make([][]string, len(ordered))
	for i, t := range ordered {
		rows[i] = TaskTableRow(t)
	}
	return RenderTable(TaskTableHeaders, rows)
}
