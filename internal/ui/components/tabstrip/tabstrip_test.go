package tabstrip

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/lazyvibe/tabdeck/internal/model"
	"github.com/lazyvibe/tabdeck/internal/presentation"
)

func sampleTabs() []model.TabViewModel {
	return []model.TabViewModel{
		{ID: "a", Location: "https://go.dev/", PageTitle: "The Go Programming Language", Icon: "https://go.dev/favicon.ico"},
		{ID: "b", Location: "https://example.com/", PageTitle: "Example", AudioPlaybackActive: true, Partition: model.PartitionTag("partition-3")},
		{ID: "c", Location: model.NewTabLocation, PageTitle: "New Tab", IsPrivate: true},
	}
}

func newStrip(width int) Model {
	m := New(presentation.DefaultPolicy())
	m.SetWidth(width)
	m.SetTabs(sampleTabs())
	return m
}

func regionFor(t *testing.T, m *Model, id string, kind ActionKind) region {
	t.Helper()
	for _, c := range m.layout() {
		if c.id != id {
			continue
		}
		for _, r := range c.regions {
			if r.kind == kind {
				return r
			}
		}
	}
	t.Fatalf("no %s region for tab %s", kind, id)
	return region{}
}

func TestViewShowsTitles(t *testing.T) {
	t.Parallel()

	m := newStrip(120)
	require.Equal(t, model.BreakpointDefault, m.Breakpoint())

	out := ansi.Strip(m.View())
	require.Contains(t, out, "The Go")
	require.Contains(t, out, "Example")
	require.Contains(t, out, "3")
	require.Equal(t, 1, strings.Count(out, "\n")+1)
}

func TestNarrowStripHidesTitles(t *testing.T) {
	t.Parallel()

	m := newStrip(15)
	require.Equal(t, model.BreakpointSmallest, m.Breakpoint())
	out := ansi.Strip(m.View())
	require.NotContains(t, out, "Example")
	for i := range m.Tabs() {
		require.False(t, m.Decision(i).Title.Visible)
	}
}

func TestHoverShowsCloseButton(t *testing.T) {
	t.Parallel()

	m := newStrip(120)
	require.False(t, m.Decision(0).CloseButton.Visible)

	m, cmd := m.Update(tea.MouseMsg{X: 2, Y: 0, Action: tea.MouseActionMotion})
	require.Nil(t, cmd)
	require.Equal(t, "a", m.HoveredID())
	require.True(t, m.Decision(0).CloseButton.Visible)

	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionMotion})
	require.Empty(t, m.HoveredID())
	require.False(t, m.Decision(0).CloseButton.Visible)
}

func TestClickCloseEmitsAction(t *testing.T) {
	t.Parallel()

	m := newStrip(120)
	m, _ = m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionMotion})
	r := regionFor(t, &m, "a", ActionCloseTab)

	m, cmd := m.Update(tea.MouseMsg{X: r.start, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	require.Equal(t, ActionMsg{Kind: ActionCloseTab, TabID: "a"}, cmd())
	require.Len(t, m.Tabs(), 3, "the strip forwards closes without acting on them")
}

func TestClickAudioAfterMotion(t *testing.T) {
	t.Parallel()

	// wide enough for the default breakpoint so the audio icon shows
	m := newStrip(200)
	require.Equal(t, model.BreakpointDefault, m.Breakpoint())

	r := regionFor(t, &m, "b", ActionToggleMute)
	m, _ = m.Update(tea.MouseMsg{X: r.start, Y: 0, Action: tea.MouseActionMotion})
	require.Equal(t, "b", m.HoveredID())
	_, cmd := m.Update(tea.MouseMsg{X: r.start, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, ActionMsg{Kind: ActionToggleMute, TabID: "b"}, cmd())
}

func TestSessionBadgeIsNotClickable(t *testing.T) {
	t.Parallel()

	m := newStrip(200)
	require.True(t, m.Decision(1).SessionBadge.Visible)
	for _, c := range m.layout() {
		for _, r := range c.regions {
			require.NotEqual(t, ActionSession, r.kind)
		}
	}

	// the pointer reaching the badge hovers the tab, which hides the badge
	cells := m.layout()
	x := cells[1].start + cells[1].width - 3
	m, _ = m.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionMotion})
	require.False(t, m.Decision(1).SessionBadge.Visible)
	_, cmd := m.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	require.NotEqual(t, ActionSession, cmd().(ActionMsg).Kind)
}

func TestClickBodySelects(t *testing.T) {
	t.Parallel()

	m := newStrip(120)
	require.Equal(t, "a", m.ActiveID())

	cells := m.layout()
	x := cells[2].start + 1
	m, cmd := m.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	require.Equal(t, ActionMsg{Kind: ActionSelect, TabID: "c"}, cmd())
	require.Equal(t, "c", m.ActiveID())
}

func TestRightClickIgnored(t *testing.T) {
	t.Parallel()

	m := newStrip(120)
	_, cmd := m.Update(tea.MouseMsg{X: 1, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	require.Nil(t, cmd)
}

func TestDecisionMemoized(t *testing.T) {
	t.Parallel()

	m := newStrip(120)
	first := m.Decision(1)
	require.Len(t, m.memo, 1)
	require.Equal(t, first, m.Decision(1))

	m.SetWidth(15)
	second := m.Decision(1)
	require.NotEqual(t, first, second)
	require.Equal(t, model.BreakpointSmallest, m.memo["b"].vm.Breakpoint)
}

func TestActiveTabNavigation(t *testing.T) {
	t.Parallel()

	m := newStrip(120)
	m.NextTab()
	require.Equal(t, "b", m.ActiveID())
	m.PrevTab()
	m.PrevTab()
	require.Equal(t, "c", m.ActiveID())

	m.RemoveTab("c")
	require.Equal(t, "b", m.ActiveID())
	require.Equal(t, 2, m.TabCount())

	m.UpsertTab(model.TabViewModel{ID: "b", PageTitle: "Renamed"})
	tab, ok := m.Tab("b")
	require.True(t, ok)
	require.Equal(t, "Renamed", tab.PageTitle)
}

func TestOverflowKeepsActiveVisible(t *testing.T) {
	t.Parallel()

	m := New(presentation.DefaultPolicy())
	m.SetWidth(12)
	var tabs []model.TabViewModel
	for _, id := range []string{"1", "2", "3", "4", "5", "6"} {
		tabs = append(tabs, model.TabViewModel{ID: id, PageTitle: "tab " + id})
	}
	m.SetTabs(tabs)
	m.SetActiveTab("6")

	visible := map[string]bool{}
	for _, c := range m.layout() {
		if c.id != "" {
			visible[c.id] = true
		}
	}
	require.True(t, visible["6"])
	require.False(t, visible["1"])
}

func TestSpinnerTick(t *testing.T) {
	t.Parallel()

	m := New(presentation.DefaultPolicy())
	m.SetTabs([]model.TabViewModel{{ID: "x", Location: "https://x.test/", IsLoading: true}})
	require.True(t, m.Loading())
	before := m.View()
	m.Tick()
	require.NotEqual(t, before, m.View())
}
