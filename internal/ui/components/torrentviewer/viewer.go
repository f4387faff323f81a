package torrentviewer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/tabdeck/internal/ui/styles"
)

// Action is a button press forwarded to the torrent engine.
type Action string

const (
	ActionStart           Action = "start"
	ActionSaveTorrentFile Action = "saveTorrentFile"
)

// ActionMsg carries a button press to the host dispatcher.
type ActionMsg struct {
	Action    Action
	TorrentID string
}

// SortChangedMsg asks the panel to reorder the file list.
type SortChangedMsg struct {
	Sort SortState
}

// KeyMap holds the panel shortcuts.
type KeyMap struct {
	Start key.Binding
	Save  key.Binding
}

// DefaultKeyMap returns the default panel shortcuts.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start download"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "save .torrent"),
		),
	}
}

// Model is the torrent detail panel. It owns the file list order.
type Model struct {
	torrentID string
	name      string
	torrent   *Torrent
	errMsg    string
	sort      SortState
	files     FileList
	keys      KeyMap
	width     int
	height    int
}

// New creates a panel for a torrent that has not been started yet.
func New(torrentID, name string) Model {
	return Model{
		torrentID: torrentID,
		name:      name,
		files: NewFileList(func(s SortState) tea.Cmd {
			return func() tea.Msg { return SortChangedMsg{Sort: s} }
		}),
		keys: DefaultKeyMap(),
	}
}

// SetTorrent updates the running torrent snapshot. nil means not started.
func (m *Model) SetTorrent(t *Torrent) {
	m.torrent = t
	if t == nil {
		m.files.SetFiles(nil)
		return
	}
	if t.Name != "" {
		m.name = t.Name
	}
	m.files.SetFiles(t.Files)
}

// SetError sets the error shown in the status line.
func (m *Model) SetError(msg string) {
	m.errMsg = msg
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.files.SetSize(max(width-4, 0), max(height-8, 3))
}

// Sort returns the current file order.
func (m Model) Sort() SortState {
	return m.sort
}

// Header returns the current header decision.
func (m Model) Header() HeaderDecision {
	return Header(m.torrent, m.name)
}

// Files returns the file list component.
func (m Model) Files() FileList {
	return m.files
}

// Update handles sort changes and the action keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SortChangedMsg:
		m.sort = msg.Sort
		m.files.SetSort(msg.Sort)
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Start):
			if m.Header().MainDisabled {
				return m, nil
			}
			return m, m.dispatch(ActionStart)
		case key.Matches(msg, m.keys.Save):
			return m, m.dispatch(ActionSaveTorrentFile)
		}
	}
	var cmd tea.Cmd
	m.files, cmd = m.files.Update(msg)
	return m, cmd
}

func (m Model) dispatch(a Action) tea.Cmd {
	msg := ActionMsg{Action: a, TorrentID: m.torrentID}
	return func() tea.Msg { return msg }
}

// View renders the panel.
func (m Model) View() string {
	h := m.Header()

	main := styles.ButtonPrimary
	if h.MainDisabled {
		main = styles.ButtonDisabled
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		main.Render(Text(h.MainButton, nil)),
		styles.ButtonWhite.Render(Text(MsgSaveTorrentFile, nil)),
	)
	header := lipgloss.JoinVertical(lipgloss.Left,
		styles.PanelTitle.Render(h.TitleText()),
		buttons,
	)

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	if status := StatusLine(m.torrent, m.errMsg); status != "" {
		if m.errMsg != "" {
			b.WriteString(styles.ErrorText.Render(status))
		} else {
			b.WriteString(status)
		}
		b.WriteString("\n")
	}
	if files := m.files.View(); files != "" {
		b.WriteString(files)
		b.WriteString("\n")
	}
	notice := Text(h.LegalNotice, nil)
	if h.LegalLink != "" {
		notice += " (" + h.LegalLink + ")"
	}
	b.WriteString(styles.Notice.Render(notice))

	box := styles.PanelBox
	if m.width > 2 {
		box = box.Width(m.width - 2)
	}
	return box.Render(b.String())
}
