package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lazyvibe/tabdeck/internal/model"
	"github.com/lazyvibe/tabdeck/internal/ui/components/tabstrip"
	"github.com/lazyvibe/tabdeck/internal/ui/components/torrentviewer"
	"pkt.systems/pslog"
)

// Update handles all messages for the application.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		a.tabs, cmd = a.tabs.Update(msg)
		return a, cmd

	case tabstrip.ActionMsg:
		return a.handleTabAction(msg)

	case torrentviewer.ActionMsg:
		return a.handleTorrentAction(msg)

	case spinnerTickMsg:
		a.tabs.Tick()
		if a.tabs.Loading() {
			return a, spinnerTick()
		}
		return a, nil

	case tea.KeyMsg:
		// messages last until the next key
		a.statusBar.ClearMessage()
		if key.Matches(msg, a.keys.Quit) {
			a.quitting = true
			return a, tea.Quit
		}
		if key.Matches(msg, a.keys.Focus) {
			a.cycleFocus()
			return a, nil
		}
		if a.focus == FocusTabs {
			return a.handleTabKeys(msg)
		}
	}

	var cmd tea.Cmd
	a.torrent, cmd = a.torrent.Update(msg)
	return a, cmd
}

func (a *App) cycleFocus() {
	if a.focus == FocusTabs {
		a.focus = FocusTorrent
	} else {
		a.focus = FocusTabs
	}
}

func (a App) handleTabKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := a.tabs.ActiveID()
	switch {
	case key.Matches(msg, a.keys.NextTab):
		a.tabs.NextTab()
	case key.Matches(msg, a.keys.PrevTab):
		a.tabs.PrevTab()
	case key.Matches(msg, a.keys.CloseTab):
		return a.handleTabAction(tabstrip.ActionMsg{Kind: tabstrip.ActionCloseTab, TabID: id})
	case key.Matches(msg, a.keys.ToggleMute):
		return a.handleTabAction(tabstrip.ActionMsg{Kind: tabstrip.ActionToggleMute, TabID: id})
	case key.Matches(msg, a.keys.Session):
		return a.handleTabAction(tabstrip.ActionMsg{Kind: tabstrip.ActionSession, TabID: id})
	case key.Matches(msg, a.keys.Pin):
		a.updateTab(id, func(vm *model.TabViewModel) {
			if vm.IsPinned() {
				vm.PinnedLocation = ""
			} else {
				vm.PinnedLocation = vm.Location
			}
		})
	case key.Matches(msg, a.keys.Private):
		a.updateTab(id, func(vm *model.TabViewModel) { vm.IsPrivate = !vm.IsPrivate })
	case key.Matches(msg, a.keys.Hover):
		a.tabs.ToggleHover(id)
	}
	return a, nil
}

// handleTabAction applies a click forwarded by the tab strip.
func (a App) handleTabAction(msg tabstrip.ActionMsg) (tea.Model, tea.Cmd) {
	log := pslog.Ctx(a.ctx).With("tab", msg.TabID, "action", string(msg.Kind))
	vm, ok := a.tabs.Tab(msg.TabID)
	if !ok {
		log.Warn("tab action dropped", "reason", "unknown tab")
		return a, nil
	}
	a.statusBar.ClearMessage()

	switch msg.Kind {
	case tabstrip.ActionSelect:
		a.tabs.SetActiveTab(msg.TabID)
	case tabstrip.ActionCloseTab:
		a.tabs.RemoveTab(msg.TabID)
		a.statusBar.SetMessage(fmt.Sprintf("Closed %q", vm.PageTitle), false)
	case tabstrip.ActionToggleMute:
		a.updateTab(msg.TabID, func(vm *model.TabViewModel) { vm.AudioMuted = !vm.AudioMuted })
	case tabstrip.ActionSession:
		if vm.Partition.Normalize() > 0 {
			a.updateTab(msg.TabID, func(vm *model.TabViewModel) { vm.Partition = model.Partition{} })
			a.statusBar.SetMessage("Session ended", false)
		} else {
			n := a.nextPartition()
			a.updateTab(msg.TabID, func(vm *model.TabViewModel) { vm.Partition = model.PartitionNumber(n) })
			a.statusBar.SetMessage(fmt.Sprintf("Session %d started", n), false)
		}
	}
	log.Debug("tab action")
	a.statusBar.SetLayout(a.tabs.TabCount(), a.tabs.Breakpoint())
	return a, nil
}

func (a *App) updateTab(id string, fn func(*model.TabViewModel)) {
	vm, ok := a.tabs.Tab(id)
	if !ok {
		return
	}
	fn(&vm)
	a.tabs.UpsertTab(vm)
}

// nextPartition returns one more than the highest partition in use.
func (a App) nextPartition() int {
	n := 0
	for _, t := range a.tabs.Tabs() {
		n = max(n, t.Partition.Normalize())
	}
	return n + 1
}

// handleTorrentAction forwards a panel button to the torrent engine.
func (a App) handleTorrentAction(msg torrentviewer.ActionMsg) (tea.Model, tea.Cmd) {
	log := pslog.Ctx(a.ctx).With("torrent", msg.TorrentID, "action", string(msg.Action))
	switch msg.Action {
	case torrentviewer.ActionStart:
		a.torrent.SetTorrent(&torrentviewer.Torrent{})
		a.statusBar.SetMessage("Download started", false)
	case torrentviewer.ActionSaveTorrentFile:
		a.statusBar.SetMessage("Saving torrent file", false)
	}
	log.Info("torrent action")
	return a, nil
}
