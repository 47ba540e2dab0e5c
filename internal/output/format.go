// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskpad/internal/service"
)

// FormatTask formats a task line.
// Format: "{ID:>4}  [x] {TITLE}\n" with a checked box for completed
// tasks, followed by the description indented to the title column when
// present.
func FormatTask(w io.Writer, task service.Task) {
	box := " "
	if task.IsCompleted {
		box = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", task.ID, box, normalizeTitle(task.Title))

	if desc := strings.TrimSpace(task.Description); desc != "" {
		fmt.Fprintf(w, "          %s\n", collapseLines(desc))
	}
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = collapseLines(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// collapseLines replaces line breaks with spaces so a multi-line value
// stays on one display line.
func collapseLines(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
