package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/montrey/autojump/history"
)

const statRule = "________________________________________"

// WriteStat prints the --stat report. Colours are only emitted when w is a
// terminal that supports them, so piped output is plain text.
func WriteStat(w io.Writer, s history.Stats) error {
	r := lipgloss.NewRenderer(w)
	weight := r.NewStyle().Foreground(lipgloss.Color("62"))
	label := r.NewStyle().Foreground(lipgloss.Color("240"))
	total := r.NewStyle().Bold(true)

	var b strings.Builder
	// Tabs are written raw: lipgloss would expand them.
	for _, e := range s.Entries {
		fmt.Fprintf(&b, "%s:\t%s\n", weight.Render(fmt.Sprintf("%.1f", e.Weight)), e.Path)
	}

	b.WriteString(statRule + "\n\n")
	fmt.Fprintf(&b, "%s:\t %s\n", total.Render(fmt.Sprintf("%.0f", s.TotalWeight)), label.Render("total weight"))
	fmt.Fprintf(&b, "%d:\t %s\n", len(s.Entries), label.Render("number of entries"))
	if s.HasCwd {
		fmt.Fprintf(&b, "%.2f:\t %s\n", s.CwdWeight, label.Render("current directory weight"))
	}
	fmt.Fprintf(&b, "\n%s:\t %s\n", label.Render("data"), s.DataPath)

	_, err := io.WriteString(w, b.String())
	return err
}
