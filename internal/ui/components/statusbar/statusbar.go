// Package statusbar provides the status bar UI component.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/tabdeck/internal/model"
	"github.com/lazyvibe/tabdeck/internal/ui/styles"
)

// Model is the status bar component.
type Model struct {
	width      int
	message    string
	isError    bool
	bindings   []key.Binding
	tabCount   int
	breakpoint model.Breakpoint
}

// New creates a new status bar component.
func New(bindings []key.Binding) Model {
	return Model{bindings: bindings}
}

// SetWidth updates the status bar width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetMessage sets a temporary message.
func (m *Model) SetMessage(msg string, isError bool) {
	m.message = msg
	m.isError = isError
}

// ClearMessage clears the temporary message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.isError = false
}

// SetLayout updates the tab count and width bucket shown on the left.
func (m *Model) SetLayout(tabs int, bp model.Breakpoint) {
	m.tabCount = tabs
	m.breakpoint = bp
}

// Message returns the current message.
func (m Model) Message() string {
	return m.message
}

// View renders the status bar.
func (m Model) View() string {
	brand := styles.StatusBarBrand.Render(" tabdeck ")

	layout := ""
	if m.tabCount > 0 {
		layout = lipgloss.NewStyle().
			Foreground(styles.Secondary).
			Render(fmt.Sprintf(" ● %d tabs · %s ", m.tabCount, m.breakpoint))
	}

	helpItems := make([]string, 0, len(m.bindings))
	for _, b := range m.bindings {
		h := b.Help()
		helpItems = append(helpItems, m.renderKey(h.Key, h.Desc))
	}
	help := strings.Join(helpItems, " ")

	var msgArea string
	if m.message != "" {
		msgStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
		if m.isError {
			msgStyle = lipgloss.NewStyle().Foreground(styles.Danger).Bold(true)
		}
		msgArea = msgStyle.Render(" " + m.message + " ")
	}

	leftContent := brand + layout
	padding := m.width - lipgloss.Width(leftContent) - lipgloss.Width(help) - lipgloss.Width(msgArea)
	if padding < 0 {
		padding = 0
	}
	leftPad := padding / 2
	rightPad := padding - leftPad

	content := leftContent +
		strings.Repeat(" ", leftPad) +
		msgArea +
		strings.Repeat(" ", rightPad) +
		help

	return lipgloss.NewStyle().
		Background(styles.Mantle).
		Foreground(styles.TextMuted).
		Width(m.width).
		Render(content)
}

// renderKey renders a key binding hint.
func (m Model) renderKey(key, desc string) string {
	return styles.StatusBarKey.Render(key) + styles.StatusBarDesc.Render(":"+desc)
}
