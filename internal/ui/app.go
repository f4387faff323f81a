// Package ui provides the terminal user interface for tabdeck.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/tabdeck/internal/app"
	"github.com/lazyvibe/tabdeck/internal/ui/components/statusbar"
	"github.com/lazyvibe/tabdeck/internal/ui/components/tabstrip"
	"github.com/lazyvibe/tabdeck/internal/ui/components/torrentviewer"
	"github.com/lazyvibe/tabdeck/internal/ui/keys"
)

// FocusArea represents which UI pane has focus.
type FocusArea int

const (
	// FocusTabs is the tab strip.
	FocusTabs FocusArea = iota
	// FocusTorrent is the torrent panel.
	FocusTorrent
)

const (
	minAppWidth  = 20
	minAppHeight = 6

	spinnerInterval = 120 * time.Millisecond
)

// App is the main application model.
type App struct {
	// Components
	tabs      tabstrip.Model
	torrent   torrentviewer.Model
	statusBar statusbar.Model

	// State
	focus    FocusArea
	width    int
	height   int
	ready    bool
	quitting bool

	config *app.Config
	keys   keys.KeyMap
	ctx    context.Context
}

// New creates a new application instance.
func New(ctx context.Context, cfg *app.Config, session *app.Session) App {
	km := keys.DefaultKeyMap()
	tabs := tabstrip.New(cfg.Policy())
	tabs.SetTabs(session.Tabs)

	viewer := torrentviewer.New(session.TorrentID, session.TorrentName)
	viewer.SetTorrent(session.Torrent)
	viewer.SetError(session.Error)

	a := App{
		tabs:      tabs,
		torrent:   viewer,
		statusBar: statusbar.New(km.ShortHelp()),
		focus:     FocusTabs,
		config:    cfg,
		keys:      km,
		ctx:       ctx,
	}
	a.statusBar.SetLayout(a.tabs.TabCount(), a.tabs.Breakpoint())
	return a
}

// Init starts the spinner when a tab is loading.
func (a App) Init() tea.Cmd {
	if a.tabs.Loading() {
		return spinnerTick()
	}
	return nil
}

// SetSize updates the layout for a new terminal size.
func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.tabs.SetWidth(width)
	a.tabs.SetRow(0)
	a.statusBar.SetWidth(width)
	a.torrent.SetSize(width, max(height-2, 0))
	a.statusBar.SetLayout(a.tabs.TabCount(), a.tabs.Breakpoint())
}

func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

// Tabs returns the tab strip.
func (a App) Tabs() tabstrip.Model {
	return a.tabs
}

// Torrent returns the torrent panel.
func (a App) Torrent() torrentviewer.Model {
	return a.torrent
}

// Focus returns the focused pane.
func (a App) Focus() FocusArea {
	return a.focus
}

// StatusMessage returns the status bar message.
func (a App) StatusMessage() string {
	return a.statusBar.Message()
}

func spinnerTick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg { return spinnerTickMsg{} })
}
