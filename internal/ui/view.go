package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/tabdeck/internal/ui/styles"
)

// View renders the entire application.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	if !a.ready {
		return styles.StatusBarBrand.Render("Loading tabdeck...")
	}

	if a.windowTooSmall() {
		msg := fmt.Sprintf("Window too small: need %dx%d, have %dx%d", minAppWidth, minAppHeight, a.width, a.height)
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(styles.Accent).
			Render(msg)
	}

	tabs := a.tabs.View()
	body := a.torrent.View()
	status := a.statusBar.View()

	bodyHeight := a.height - lipgloss.Height(tabs) - lipgloss.Height(status)
	body = lipgloss.NewStyle().Height(max(bodyHeight, 0)).MaxHeight(max(bodyHeight, 0)).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, status)
}
