// Package ui renders terminal output for the stitch command.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	accentColor  = lipgloss.Color("#10B981")
	dangerColor  = lipgloss.Color("#EF4444")
	infoColor    = lipgloss.Color("#06B6D4")
	textColor    = lipgloss.Color("#E2E8F0")
	dimTextColor = lipgloss.Color("#64748B")
	borderColor  = lipgloss.Color("#334155")

	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Foreground(textColor).Padding(0, 1)
	indexStyle   = lipgloss.NewStyle().Foreground(dimTextColor).Padding(0, 1)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(dangerColor)
	infoStyle    = lipgloss.NewStyle().Foreground(infoColor)
	pathStyle    = lipgloss.NewStyle().Italic(true).Foreground(textColor)
)

func PrintSuccess(w io.Writer, msg string) {
	fmt.Fprintln(w, successStyle.Render(msg))
}

func PrintError(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render("Error: "+msg))
}

func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintln(w, infoStyle.Render(msg))
}

// PrintPath prints a label followed by a highlighted path.
func PrintPath(w io.Writer, label, path string) {
	fmt.Fprintf(w, "%s %s\n", infoStyle.Render(label), pathStyle.Render(path))
}
