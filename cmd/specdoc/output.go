package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dgallion1/specdoc/internal/doctree"
)

var (
	// titleStyle for the document title
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for ranks and anchors
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// topStyle for rank 1 sections
	topStyle = lipgloss.NewStyle().
			Bold(true)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	headerBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)
)

// FormatOutline writes the outline as an indented tree under a title box.
func FormatOutline(w io.Writer, tree *doctree.DocTree) {
	header := fmt.Sprintf("%s\n%s %d", titleStyle.Render(tree.Title), dimStyle.Render("Sections:"), tree.Count())
	fmt.Fprintln(w, headerBoxStyle.Render(header))

	tree.Flatten(func(n *doctree.DocNode, breadcrumb []string) {
		indent := strings.Repeat("  ", len(breadcrumb))
		title := n.Title
		if n.Rank == 1 {
			title = topStyle.Render(title)
		}
		fmt.Fprintf(w, "%s%s %s %s\n", indent, dimStyle.Render(fmt.Sprintf("h%d", n.Rank)), title, dimStyle.Render("#"+n.Anchor))
	})

	for _, warning := range tree.Warnings {
		fmt.Fprintln(w, warnStyle.Render("warning: ")+warning)
	}
}
