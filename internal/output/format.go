// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// NoMatches is printed when a filter selects no tasks.
const NoMatches = "no tasks match your filter"

// FormatTask formats one task line.
// Format: "{N:>4}  [x] {PRIORITY:<6}  {TEXT}  (added {DATE})\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	mark := " "
	if task.Completed {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %-6s  %s  (added %s)\n", num, mark, task.Priority, normalizeText(task.Text), task.CreatedDate)
}

// NumberedTask is a task paired with its 1-based position in the full list.
type NumberedTask struct {
	Num  int
	Task service.Task
}

// Number pairs each selected task with its position in all.
// Tasks missing from all are skipped.
func Number(all, selected []service.Task) []NumberedTask {
	pos := make(map[string]int, len(all))
	for i, t := range all {
		pos[t.ID] = i + 1
	}

	var result []NumberedTask
	for _, t := range selected {
		if num, ok := pos[t.ID]; ok {
			result = append(result, NumberedTask{Num: num, Task: t})
		}
	}
	return result
}

// FormatTasks renders a selection of tasks, numbering each by its position
// in all. Returns false if nothing was written.
func FormatTasks(w io.Writer, all, selected []service.Task) bool {
	rows := Number(all, selected)
	for _, r := range rows {
		FormatTask(w, r.Num, r.Task)
	}
	return len(rows) > 0
}

// FormatStats formats the counters line.
func FormatStats(w io.Writer, st service.Stats) {
	fmt.Fprintf(w, "total: %d  completed: %d  high priority: %d  pending: %d\n",
		st.Total, st.Completed, st.HighPriority, st.Pending)
}

// normalizeText normalizes task text for display.
// Newlines are replaced with spaces.
func normalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r", " ")
	return strings.ReplaceAll(text, "\n", " ")
}
