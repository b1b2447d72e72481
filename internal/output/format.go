// Package output provides formatters for console output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskman/internal/service"
)

const (
	// BannerTop is the first banner line.
	BannerTop = "╭─━─━─━─━─━─━─━─━─≪✠≫━─━─━─━─━─━─━─━─━╮"

	// MenuTop opens the menu box.
	MenuTop = "━─━───────────────༺༻───────────────━─━"

	// MenuBottom closes the menu box.
	MenuBottom = "╰─━─━─━─━─━─━─━─━─≪✠≫─━─━─━─━─━─━─━─━─╯"

	// MenuPrompt follows the menu box.
	MenuPrompt = "➥ Choose an action: "

	// menuLabelWidth pads labels so the right border lines up with MenuBottom.
	menuLabelWidth = 31

	emptyHint = "No tasks available. Maybe you'd like to add some tasks?"
)

// MenuEntry is one selectable menu line.
type MenuEntry struct {
	Key   int
	Label string
}

// FormatBanner writes the welcome banner.
func FormatBanner(w io.Writer) {
	fmt.Fprintln(w, BannerTop)
	fmt.Fprintln(w, " 📋 Welcome to Task Manager! 📋")
}

// Menu renders the boxed action menu, without a trailing newline.
// Format per entry: "| [{KEY}]: {LABEL padded to 31}|"
func Menu(entries []MenuEntry) string {
	var b strings.Builder
	b.WriteString(MenuTop)
	b.WriteByte('\n')
	for _, e := range entries {
		fmt.Fprintf(&b, "| [%d]: %-*s|\n", e.Key, menuLabelWidth, e.Label)
	}
	b.WriteString(MenuBottom)
	b.WriteByte('\n')
	b.WriteString(MenuPrompt)
	return b.String()
}

// FormatTask formats one task line.
// Format: "{LABEL} id: {ID} | title: {TITLE} | description: {DESCRIPTION}\n"
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "%s id: %d | title: %s | description: %s\n",
		task.Priority.Label(), task.ID, normalizeField(task.Title), normalizeField(task.Description))
}

// FormatTasks formats tasks in the given order. An empty slice writes nothing.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for _, task := range tasks {
		FormatTask(w, task)
	}
}

// FormatEmpty writes the hint shown when there is nothing to view.
func FormatEmpty(w io.Writer) {
	fmt.Fprintln(w, emptyHint)
}

// normalizeField keeps a field on one line.
// Empty fields are printed as-is.
func normalizeField(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
