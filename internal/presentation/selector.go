// Package presentation decides which tab indicators are shown and how they look.
//
// Each indicator is a pure predicate over the same read-only TabViewModel, so the
// rules can run in any order and Compute holds no state between calls.
package presentation

import (
	"strconv"

	"github.com/lazyvibe/tabdeck/internal/contrast"
	"github.com/lazyvibe/tabdeck/internal/model"
)

// Symbol names the glyph an indicator draws.
type Symbol string

const (
	SymbolNone        Symbol = ""
	SymbolLoading     Symbol = "loading"
	SymbolDefaultIcon Symbol = "defaultIcon"
	SymbolFavicon     Symbol = "favicon"
	SymbolVolumeOn    Symbol = "volumeOn"
	SymbolVolumeOff   Symbol = "volumeOff"
	SymbolPrivate     Symbol = "private"
	SymbolNewSession  Symbol = "newSession"
	SymbolCloseTab    Symbol = "closeTab"
	SymbolTitle       Symbol = "title"
)

// Size is the layout size class of an indicator.
type Size string

const (
	SizeNormal Size = "normal"
	SizeNarrow Size = "narrow"
)

// Style is the computed look of one indicator.
type Style struct {
	Symbol Symbol
	// Ink is the foreground; empty inherits from the tab.
	Ink contrast.Ink
	// Highlight draws the glyph in the accent color.
	Highlight bool
	Size      Size
	// Invert flips a dark glyph to light on dark themes.
	Invert bool
	// Content is text drawn by the indicator: the session digit or the page title.
	Content string
	// Image is the favicon URL when Symbol is SymbolFavicon.
	Image       string
	MarginRight int
	Bold        bool
}

// Element is one optional indicator.
type Element struct {
	Visible bool
	Style   Style
}

// Decision describes every indicator of a tab for one render pass.
type Decision struct {
	Favicon      Element
	AudioIcon    Element
	PrivateBadge Element
	SessionBadge Element
	Title        Element
	CloseButton  Element
}

// Compute selects the visible indicators of vm and their styles.
func Compute(vm model.TabViewModel, policy Policy) Decision {
	return Decision{
		Favicon:      favicon(vm, policy),
		AudioIcon:    audioIcon(vm, policy),
		PrivateBadge: privateBadge(vm, policy),
		SessionBadge: sessionBadge(vm, policy),
		Title:        title(vm, policy),
		CloseButton:  closeButton(vm, policy),
	}
}

func favicon(vm model.TabViewModel, p Policy) Element {
	if vm.Location == model.NewTabLocation {
		return Element{}
	}
	st := Style{Symbol: SymbolFavicon, Image: vm.Icon, Size: SizeNormal}
	switch {
	case vm.IsLoading:
		st.Symbol, st.Image = SymbolLoading, ""
	case vm.Icon == "":
		st.Symbol = SymbolDefaultIcon
	}
	if !vm.IsPinned() && p.FaviconNarrow.Contains(vm.Breakpoint) {
		st.Size = SizeNarrow
	}
	return Element{Visible: true, Style: st}
}

// CanPlayAudio reports whether the page has audio, playing or muted.
func CanPlayAudio(vm model.TabViewModel) bool {
	return vm.AudioPlaybackActive || vm.AudioMuted
}

// Muted reports whether audio is present and muted.
func Muted(vm model.TabViewModel) bool {
	return CanPlayAudio(vm) && vm.AudioMuted
}

// Unmuted reports whether audio is playing and not muted.
func Unmuted(vm model.TabViewModel) bool {
	return vm.AudioPlaybackActive && !vm.AudioMuted
}

func audioIcon(vm model.TabViewModel, p Policy) Element {
	if !CanPlayAudio(vm) || p.AudioMedium.Contains(vm.Breakpoint) || p.AudioNarrow.Contains(vm.Breakpoint) {
		return Element{}
	}
	sym := SymbolVolumeOn
	if Muted(vm) {
		sym = SymbolVolumeOff
	}
	return Element{Visible: true, Style: Style{Symbol: sym, Highlight: true, Size: SizeNormal}}
}

func privateBadge(vm model.TabViewModel, p Policy) Element {
	if !vm.IsPrivate || vm.HoverState || p.PrivateNarrow.Contains(vm.Breakpoint) {
		return Element{}
	}
	return Element{Visible: true, Style: Style{Symbol: SymbolPrivate, Size: SizeNormal}}
}

// PartitionDigit returns the session digit drawn for vm, capped at limit.
func PartitionDigit(vm model.TabViewModel, limit int) int {
	n := vm.Partition.Normalize()
	if n > limit {
		return limit
	}
	return n
}

func sessionBadge(vm model.TabViewModel, p Policy) Element {
	n := vm.Partition.Normalize()
	if n <= 0 || vm.HoverState || p.SessionNarrow.Contains(vm.Breakpoint) {
		return Element{}
	}
	ink := contrast.Black
	if theme := vm.EffectiveThemeColor(); vm.IsActive && p.PaintTabs && theme != "" {
		ink = p.textColorFor(theme)
	}
	return Element{Visible: true, Style: Style{
		Symbol:  SymbolNewSession,
		Ink:     ink,
		Size:    SizeNormal,
		Invert:  vm.IsActive && ink == contrast.White,
		Content: strconv.Itoa(PartitionDigit(vm, p.MaxPartitionDigit)),
		Bold:    true,
	}}
}

// TitleHidden reports whether the layout leaves no room for the title.
func TitleHidden(vm model.TabViewModel, p Policy) bool {
	bp := vm.Breakpoint
	return (bp == model.BreakpointMediumSmall && vm.HasSecondaryIcon()) ||
		p.TitleHidden.Contains(bp) ||
		(vm.HoverState && p.TitleHoverNarrow.Contains(bp))
}

// TitleInk returns the ink of the title text.
func TitleInk(vm model.TabViewModel, p Policy) contrast.Ink {
	theme := vm.EffectiveThemeColor()
	if !vm.IsPrivate && vm.IsActive && p.PaintTabs && theme != "" {
		return p.textColorFor(theme)
	}
	if vm.IsPrivate {
		return contrast.White
	}
	return contrast.Black
}

func title(vm model.TabViewModel, p Policy) Element {
	if vm.IsPinned() || TitleHidden(vm, p) {
		return Element{}
	}
	st := Style{
		Symbol:  SymbolTitle,
		Ink:     TitleInk(vm, p),
		Size:    SizeNormal,
		Content: vm.PageTitle,
		Bold:    p.BoldTitles,
	}
	if vm.HoverState {
		st.MarginRight = p.CloseFootprint
	}
	return Element{Visible: true, Style: st}
}

func closeButton(vm model.TabViewModel, p Policy) Element {
	if !vm.HoverState || p.CloseNarrow.Contains(vm.Breakpoint) || vm.IsPinned() {
		return Element{}
	}
	return Element{Visible: true, Style: Style{Symbol: SymbolCloseTab, Size: SizeNormal}}
}
