// Package tasks turns staged file paths into formatter commands.
//
// A task (see [config.Task]) pairs a glob pattern with argv templates. The
// hook runner hands over candidate paths; [Plan] drops paths inside
// excluded directories and expands each template over the rest.
//
// # Empty Input
//
// When no path survives the exclusion, no command is produced at all.
// Formatters such as Biome treat a missing path argument as "the whole
// working tree", which is never what a pre-commit hook wants.
//
// # Templates
//
// A template token equal to "{files}" is replaced by the paths, one token
// each. Templates without it get the paths appended:
//
//	["npx", "biome", "format", "--fix", "{files}"]
//	["npx", "prettier", "--write"]
//
// Commands are argv lists and are never passed through a shell by
// stagefmt. [Command.String] renders a quoted line for runners that
// expect shell strings.
//
// # Selection
//
// [Select] picks tasks by name; unknown names get fuzzy suggestions.
package tasks
