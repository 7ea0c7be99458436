package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/goliatone/go-formtree/pkg/keys"
)

// markdownTable renders entries as a GitHub flavoured table.
func markdownTable(title string, entries []keys.KeyEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Key | Field | Attribute | Source |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, entry := range entries {
		path := entry.Path
		if path == "" {
			path = "(form)"
		}
		key := "`" + entry.Key + "`"
		if entry.Explicit {
			key += " (pinned)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", key, escapeCell(path), entry.Suffix, escapeCell(entry.Fallback))
	}
	return b.String()
}

func escapeCell(value string) string {
	return strings.ReplaceAll(value, "|", `\|`)
}

// writeMarkdown styles the table with glamour when w is a terminal and
// writes the raw markdown otherwise.
func writeMarkdown(w io.Writer, title string, entries []keys.KeyEntry) error {
	doc := markdownTable(title, entries)
	if !isTerminal(w) {
		_, err := io.WriteString(w, doc)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithColorProfile(termenv.ColorProfile()),
	)
	if err != nil {
		return fmt.Errorf("cli: markdown renderer: %w", err)
	}
	out, err := renderer.Render(doc)
	if err != nil {
		return fmt.Errorf("cli: render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
