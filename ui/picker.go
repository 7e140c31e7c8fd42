// Package ui holds the terminal front ends: the interactive directory picker
// and the styled --stat report.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/montrey/autojump/logging"
)

var (
	// ErrAborted is returned when the user leaves the picker without a choice.
	ErrAborted = errors.New("selection aborted")
	// ErrNoCandidates is returned when there is nothing to pick from.
	ErrNoCandidates = errors.New("no matching directories")
)

var log = logging.ForComponent(logging.CompUI)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	matchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	emptyStyle  = lipgloss.NewStyle().Faint(true)
)

// Picker is a bubbletea model listing candidate directories with a filter
// input on top.
type Picker struct {
	input      textinput.Model
	candidates []string
	results    []Result
	cursor     int
	selected   string
	aborted    bool
	width      int
}

// NewPicker builds a picker over candidates, which are shown in the given
// order until the user types a filter.
func NewPicker(candidates []string) Picker {
	ti := textinput.New()
	ti.Placeholder = "Filter..."
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 40

	return Picker{
		input:      ti,
		candidates: candidates,
		results:    Filter(candidates, ""),
	}
}

func (m Picker) Init() tea.Cmd {
	return textinput.Blink
}

func (m Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if len(m.results) == 0 {
				return m, nil
			}
			m.selected = m.results[m.cursor].Path
			return m, tea.Quit
		case "up", "ctrl+p", "shift+tab":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n", "tab":
			if m.cursor < len(m.results)-1 {
				m.cursor++
			}
			return m, nil
		}

		oldValue := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != oldValue {
			m.results = Filter(m.candidates, m.input.Value())
			m.cursor = 0
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width
	}
	return m, nil
}

func (m Picker) View() string {
	var lines []string
	if len(m.results) == 0 {
		lines = append(lines, emptyStyle.Render("  (no match)"))
	}
	for i, r := range m.results {
		prefix := "  "
		if i == m.cursor {
			prefix = cursorStyle.Render("> ")
		}
		lines = append(lines, fmt.Sprintf("%s%d %s", prefix, i+1, highlight(r)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.input.View(),
		strings.Join(lines, "\n"),
		helpStyle.Render("↑/↓: select • Enter: jump • Esc: cancel"),
	)
}

// Selected returns the chosen path, or "" when none was chosen.
func (m Picker) Selected() string {
	return m.selected
}

// Aborted reports whether the user cancelled.
func (m Picker) Aborted() bool {
	return m.aborted
}

// highlight renders the fuzzy-matched characters of a result.
func highlight(r Result) string {
	if len(r.Matches) == 0 {
		return r.Path
	}
	matched := make(map[int]bool, len(r.Matches))
	for _, i := range r.Matches {
		matched[i] = true
	}

	var b strings.Builder
	for i, ch := range r.Path {
		if matched[i] {
			b.WriteString(matchStyle.Render(string(ch)))
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Pick runs the picker on the terminal, drawing to out, and returns the
// chosen path. A single candidate is returned without prompting.
func Pick(candidates []string, out io.Writer) (string, error) {
	switch len(candidates) {
	case 0:
		return "", ErrNoCandidates
	case 1:
		return candidates[0], nil
	}

	p := tea.NewProgram(NewPicker(candidates), tea.WithOutput(out), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to run picker: %w", err)
	}

	m, ok := final.(Picker)
	if !ok || m.Aborted() || m.Selected() == "" {
		log.Debug("picker_aborted", "candidates", len(candidates))
		return "", ErrAborted
	}
	log.Debug("picker_selected", "path", m.Selected())
	return m.Selected(), nil
}
