// Package tabstrip provides the tab bar component that draws presentation decisions.
package tabstrip

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lazyvibe/tabdeck/internal/model"
	"github.com/lazyvibe/tabdeck/internal/presentation"
	"github.com/lazyvibe/tabdeck/internal/ui/styles"
)

// ActionKind names a click the strip forwards to the host.
type ActionKind string

const (
	// ActionSelect activates a tab.
	ActionSelect ActionKind = "select"
	// ActionCloseTab closes a tab.
	ActionCloseTab ActionKind = "closeTab"
	// ActionToggleMute flips the mute state of a tab's audio.
	ActionToggleMute ActionKind = "toggleMute"
	// ActionSession starts or stops the tab's session partition. Hovering
	// hides the session badge, so the strip never emits it; the host sends
	// it from the session key.
	ActionSession ActionKind = "session"
)

// ActionMsg is emitted when a tab indicator is clicked. The strip does not act on it.
type ActionMsg struct {
	Kind  ActionKind
	TabID string
}

// minCellWidth is the narrowest a tab is drawn before the strip scrolls.
const minCellWidth = 4

type memoEntry struct {
	vm       model.TabViewModel
	decision presentation.Decision
}

type region struct {
	kind       ActionKind
	start, end int
}

type cell struct {
	id       string
	start    int
	width    int
	rendered string
	regions  []region
}

// Model is the tab strip component.
type Model struct {
	tabs        []model.TabViewModel
	activeIndex int
	hoverIndex  int
	offset      int
	width       int
	row         int
	frame       int
	policy      presentation.Policy
	memo        map[string]memoEntry
}

// New creates a tab strip drawing with the given policy.
func New(policy presentation.Policy) Model {
	return Model{
		hoverIndex: -1,
		policy:     policy,
		memo:       make(map[string]memoEntry),
	}
}

// SetWidth sets the component width.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// SetRow sets the screen row the strip is drawn on, for mouse hit testing.
func (m *Model) SetRow(row int) {
	m.row = row
}

// SetPolicy replaces the presentation policy and drops memoized decisions.
func (m *Model) SetPolicy(policy presentation.Policy) {
	m.policy = policy
	m.memo = make(map[string]memoEntry)
}

// SetTabs replaces all tabs, keeping the active tab when it still exists.
func (m *Model) SetTabs(tabs []model.TabViewModel) {
	active := m.ActiveID()
	m.tabs = append([]model.TabViewModel(nil), tabs...)
	m.activeIndex = 0
	for i, t := range m.tabs {
		if t.ID == active || (active == "" && t.IsActive) {
			m.activeIndex = i
		}
	}
	if m.hoverIndex >= len(m.tabs) {
		m.hoverIndex = -1
	}
}

// UpsertTab updates a tab in place or appends it.
func (m *Model) UpsertTab(vm model.TabViewModel) {
	for i, t := range m.tabs {
		if t.ID == vm.ID {
			m.tabs[i] = vm
			return
		}
	}
	m.tabs = append(m.tabs, vm)
}

// RemoveTab removes a tab by ID.
func (m *Model) RemoveTab(id string) {
	for i, t := range m.tabs {
		if t.ID == id {
			m.tabs = append(m.tabs[:i], m.tabs[i+1:]...)
			delete(m.memo, id)
			if m.activeIndex >= len(m.tabs) && m.activeIndex > 0 {
				m.activeIndex--
			}
			if m.offset >= len(m.tabs) && m.offset > 0 {
				m.offset--
			}
			m.hoverIndex = -1
			return
		}
	}
}

// SetActiveTab sets the active tab by ID.
func (m *Model) SetActiveTab(id string) {
	for i, t := range m.tabs {
		if t.ID == id {
			m.activeIndex = i
			return
		}
	}
}

// NextTab switches to the next tab.
func (m *Model) NextTab() {
	if len(m.tabs) == 0 {
		return
	}
	m.activeIndex = (m.activeIndex + 1) % len(m.tabs)
}

// PrevTab switches to the previous tab.
func (m *Model) PrevTab() {
	if len(m.tabs) == 0 {
		return
	}
	m.activeIndex--
	if m.activeIndex < 0 {
		m.activeIndex = len(m.tabs) - 1
	}
}

// ActiveID returns the ID of the active tab.
func (m Model) ActiveID() string {
	if m.activeIndex >= 0 && m.activeIndex < len(m.tabs) {
		return m.tabs[m.activeIndex].ID
	}
	return ""
}

// Tab returns the stored view-model of a tab.
func (m Model) Tab(id string) (model.TabViewModel, bool) {
	for _, t := range m.tabs {
		if t.ID == id {
			return t, true
		}
	}
	return model.TabViewModel{}, false
}

// Tabs returns all tabs.
func (m Model) Tabs() []model.TabViewModel {
	return m.tabs
}

// TabCount returns the number of tabs.
func (m Model) TabCount() int {
	return len(m.tabs)
}

// HoveredID returns the ID of the tab under the pointer.
func (m Model) HoveredID() string {
	if m.hoverIndex >= 0 && m.hoverIndex < len(m.tabs) {
		return m.tabs[m.hoverIndex].ID
	}
	return ""
}

// ToggleHover marks the tab as hovered, or clears the hover if it already is.
// Keyboard users reach hover-only indicators through it.
func (m *Model) ToggleHover(id string) {
	for i, t := range m.tabs {
		if t.ID != id {
			continue
		}
		if m.hoverIndex == i {
			m.hoverIndex = -1
		} else {
			m.hoverIndex = i
		}
		return
	}
}

// Tick advances the loading spinner.
func (m *Model) Tick() {
	m.frame = (m.frame + 1) % len(styles.SpinnerFrames)
}

// Loading reports whether any tab shows the loading spinner.
func (m Model) Loading() bool {
	for _, t := range m.tabs {
		if t.IsLoading {
			return true
		}
	}
	return false
}

// Breakpoint returns the width bucket tabs are currently laid out in.
func (m Model) Breakpoint() model.Breakpoint {
	if m.width <= 0 {
		return model.BreakpointDefault
	}
	return model.BreakpointForWidth(m.width, len(m.tabs))
}

// viewModel returns the tab at i with strip-owned fields filled in.
func (m Model) viewModel(i int) model.TabViewModel {
	vm := m.tabs[i]
	if m.width > 0 {
		vm.Breakpoint = m.Breakpoint()
	}
	vm.IsActive = i == m.activeIndex
	vm.HoverState = i == m.hoverIndex
	return vm
}

// Decision returns the presentation of tab i, reusing the last result for unchanged input.
func (m *Model) Decision(i int) presentation.Decision {
	vm := m.viewModel(i)
	if e, ok := m.memo[vm.ID]; ok && e.vm == vm {
		return e.decision
	}
	d := presentation.Compute(vm, m.policy)
	if m.memo == nil {
		m.memo = make(map[string]memoEntry)
	}
	m.memo[vm.ID] = memoEntry{vm: vm, decision: d}
	return d
}

// Update handles mouse input. Clicks become ActionMsg commands.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok {
		return m, nil
	}
	if mouse.Y != m.row {
		m.hoverIndex = -1
		return m, nil
	}

	cells := m.layout()
	idx, kind := hit(cells, mouse.X)

	switch mouse.Action {
	case tea.MouseActionMotion:
		m.hoverIndex = idx
	case tea.MouseActionPress:
		if mouse.Button != tea.MouseButtonLeft || idx < 0 {
			return m, nil
		}
		m.hoverIndex = idx
		action := ActionMsg{Kind: kind, TabID: cells[idx].id}
		if kind == ActionSelect {
			m.activeIndex = idx
		}
		return m, func() tea.Msg { return action }
	}
	return m, nil
}

func hit(cells []cell, x int) (int, ActionKind) {
	for i, c := range cells {
		if c.id == "" || x < c.start || x >= c.start+c.width {
			continue
		}
		for _, r := range c.regions {
			if x >= r.start && x < r.end {
				return i, r.kind
			}
		}
		return i, ActionSelect
	}
	return -1, ""
}

// View renders the tab strip.
func (m *Model) View() string {
	if len(m.tabs) == 0 {
		return ""
	}
	cells := m.layout()
	rendered := make([]string, 0, len(cells))
	for _, c := range cells {
		if c.id != "" {
			rendered = append(rendered, c.rendered)
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return styles.TabBarStyle.Width(m.width).Render(row)
}

func (m *Model) cellWidth() int {
	if m.width <= 0 || len(m.tabs) == 0 {
		return 0
	}
	per := m.width / len(m.tabs)
	if per < minCellWidth {
		per = minCellWidth
	}
	return per
}

// layout renders every tab and records its screen span. Cells outside the
// visible range have an empty id.
func (m *Model) layout() []cell {
	per := m.cellWidth()
	cells := make([]cell, len(m.tabs))
	widths := make([]int, len(m.tabs))
	for i := range m.tabs {
		cells[i] = m.renderTab(i, per)
		widths[i] = cells[i].width
	}

	start, end := m.visibleRange(widths)
	x := 0
	for i := range cells {
		if i < start || i >= end {
			cells[i] = cell{}
			continue
		}
		cells[i].start = x
		for j := range cells[i].regions {
			cells[i].regions[j].start += x
			cells[i].regions[j].end += x
		}
		x += cells[i].width
	}
	return cells
}

func (m *Model) renderTab(i, per int) cell {
	vm := m.viewModel(i)
	d := m.Decision(i)

	base := styles.TabStyle
	if vm.IsActive {
		base = styles.TabActiveStyle
	}
	var bg lipgloss.TerminalColor = styles.LightTab
	if vm.IsPrivate {
		bg = styles.PrivateTab
	} else if vm.IsActive && m.policy.PaintTabs {
		bg = styles.ThemeBackground(vm.EffectiveThemeColor(), bg)
	}
	base = base.Background(bg)
	glyph := lipgloss.NewStyle().Background(bg)

	var (
		left    []string
		regions []region
		used    int
	)
	// offsets are relative to the cell and skip the left padding
	add := func(s string, kind ActionKind) {
		w := lipgloss.Width(s)
		if kind != "" {
			regions = append(regions, region{kind: kind, start: 1 + used, end: 1 + used + w})
		}
		left = append(left, s)
		used += w
	}

	if d.Favicon.Visible {
		add(glyph.Render(m.faviconGlyph(d.Favicon.Style)), "")
	}
	if d.AudioIcon.Visible {
		icon := styles.IconVolumeOn
		if d.AudioIcon.Style.Symbol == presentation.SymbolVolumeOff {
			icon = styles.IconVolumeOff
		}
		add(glyph.Foreground(styles.Highlight).Render(icon)+glyph.Render(" "), ActionToggleMute)
	}

	var closeGlyph string
	if d.CloseButton.Visible {
		closeGlyph = styles.TabCloseStyle.Background(bg).Render(styles.IconClose)
	}
	var badges []string
	if d.PrivateBadge.Visible {
		badges = append(badges, glyph.Foreground(styles.Pink).Render(styles.IconPrivate))
	}
	var sessionGlyph string
	if d.SessionBadge.Visible {
		sessionGlyph = m.sessionGlyph(d.SessionBadge.Style, bg)
	}

	inner := 0
	if per > 0 {
		// one cell of margin and two of padding
		inner = per - 3
	}
	if d.Title.Visible {
		avail := inner - used - d.Title.Style.MarginRight - lipgloss.Width(strings.Join(badges, "")) - lipgloss.Width(sessionGlyph)
		if per == 0 {
			avail = lipgloss.Width(d.Title.Style.Content)
		}
		if avail > 0 {
			title := ansi.Truncate(d.Title.Style.Content, avail, "…")
			ts := glyph.Foreground(styles.InkColor(d.Title.Style.Ink, styles.Base)).Bold(d.Title.Style.Bold)
			add(ts.Render(title), "")
		}
	}
	for _, b := range badges {
		add(b, "")
	}
	if sessionGlyph != "" {
		add(sessionGlyph, "")
	}

	if closeGlyph != "" {
		if gap := inner - used - lipgloss.Width(closeGlyph); gap > 0 {
			add(glyph.Render(strings.Repeat(" ", gap)), "")
		}
		add(closeGlyph, ActionCloseTab)
	}

	content := strings.Join(left, "")
	style := base
	if per > 0 {
		content = ansi.Truncate(content, max(inner, 0), "")
		style = style.Width(per - 1).MaxHeight(1)
	}
	rendered := style.Render(content)
	return cell{
		id:       vm.ID,
		width:    lipgloss.Width(rendered),
		rendered: rendered,
		regions:  regions,
	}
}

func (m *Model) faviconGlyph(st presentation.Style) string {
	var icon string
	switch st.Symbol {
	case presentation.SymbolLoading:
		icon = styles.SpinnerFrames[m.frame]
	case presentation.SymbolDefaultIcon:
		icon = styles.IconDefault
	default:
		icon = styles.IconFavicon
	}
	if st.Size == presentation.SizeNarrow {
		return icon
	}
	return icon + " "
}

func (m *Model) sessionGlyph(st presentation.Style, bg lipgloss.TerminalColor) string {
	s := styles.SessionBadgeStyle.
		Background(bg).
		Foreground(styles.InkColor(st.Ink, styles.Base)).
		Bold(st.Bold)
	if st.Invert {
		s = s.Reverse(true)
	}
	return s.Render(st.Content)
}

func (m *Model) visibleRange(widths []int) (int, int) {
	if len(widths) == 0 {
		return 0, 0
	}
	if m.width <= 0 {
		return 0, len(widths)
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	if total <= m.width {
		m.offset = 0
		return 0, len(widths)
	}

	start := m.offset
	if start < 0 {
		start = 0
	}
	if start >= len(widths) {
		start = len(widths) - 1
	}

	end := m.fitFrom(start, widths)

	if m.activeIndex < start {
		start = m.activeIndex
		end = m.fitFrom(start, widths)
	} else if m.activeIndex >= end {
		start = m.shiftLeftToFit(m.activeIndex, widths)
		end = m.fitFrom(start, widths)
	}

	if start < 0 {
		start = 0
	}
	if end > len(widths) {
		end = len(widths)
	}
	m.offset = start
	return start, end
}

func (m *Model) fitFrom(start int, widths []int) int {
	if start < 0 {
		return 0
	}
	used := 0
	end := start
	for end < len(widths) && used+widths[end] <= m.width {
		used += widths[end]
		end++
	}
	return end
}

func (m *Model) shiftLeftToFit(active int, widths []int) int {
	if active < 0 {
		return 0
	}
	used := 0
	start := active
	for start >= 0 && used+widths[start] <= m.width {
		used += widths[start]
		start--
	}
	return start + 1
}
