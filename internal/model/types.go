// Package model defines core data structures for tabdeck.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Breakpoint is the width bucket a tab is laid out in.
type Breakpoint string

const (
	// BreakpointDefault is the unconstrained width.
	BreakpointDefault Breakpoint = "default"
	// BreakpointLarge is the first compacted width.
	BreakpointLarge Breakpoint = "large"
	// BreakpointLargeMedium sits between large and medium.
	BreakpointLargeMedium Breakpoint = "largeMedium"
	// BreakpointMedium drops audio indicators.
	BreakpointMedium Breakpoint = "medium"
	// BreakpointMediumSmall hides the title when a secondary badge is present.
	BreakpointMediumSmall Breakpoint = "mediumSmall"
	// BreakpointSmall drops private and session badges.
	BreakpointSmall Breakpoint = "small"
	// BreakpointExtraSmall hides titles and the close button.
	BreakpointExtraSmall Breakpoint = "extraSmall"
	// BreakpointSmallest shows only a narrowed favicon.
	BreakpointSmallest Breakpoint = "smallest"
)

// Breakpoints lists every bucket from widest to narrowest.
var Breakpoints = []Breakpoint{
	BreakpointDefault,
	BreakpointLarge,
	BreakpointLargeMedium,
	BreakpointMedium,
	BreakpointMediumSmall,
	BreakpointSmall,
	BreakpointExtraSmall,
	BreakpointSmallest,
}

// breakpointMinWidths maps each bucket to the minimum cell width per tab.
var breakpointMinWidths = []struct {
	bp  Breakpoint
	min int
}{
	{BreakpointDefault, 28},
	{BreakpointLarge, 24},
	{BreakpointLargeMedium, 20},
	{BreakpointMedium, 16},
	{BreakpointMediumSmall, 12},
	{BreakpointSmall, 9},
	{BreakpointExtraSmall, 6},
}

// BreakpointForWidth classifies the cell width each of tabCount tabs would get.
func BreakpointForWidth(width, tabCount int) Breakpoint {
	if tabCount <= 0 {
		return BreakpointDefault
	}
	per := width / tabCount
	for _, b := range breakpointMinWidths {
		if per >= b.min {
			return b.bp
		}
	}
	return BreakpointSmallest
}

// ParseBreakpoint returns the breakpoint named s, or BreakpointDefault.
func ParseBreakpoint(s string) (Breakpoint, bool) {
	for _, bp := range Breakpoints {
		if strings.EqualFold(string(bp), s) {
			return bp, true
		}
	}
	return BreakpointDefault, false
}

// Partition identifies the session partition a tab belongs to.
// Persistent partitions arrive tagged, e.g. "partition-3"; ephemeral ones are plain numbers.
type Partition struct {
	Number int
	Tag    string
}

// PartitionNumber returns an integer partition.
func PartitionNumber(n int) Partition {
	return Partition{Number: n}
}

// PartitionTag returns a string-typed partition identifier.
func PartitionTag(tag string) Partition {
	return Partition{Tag: tag}
}

const partitionPrefix = "partition-"

// Normalize returns the numeric partition, stripping a leading "partition-" from tags.
// Anything that is not a number normalizes to 0.
func (p Partition) Normalize() int {
	if p.Tag == "" {
		return p.Number
	}
	tag := p.Tag
	if len(tag) >= len(partitionPrefix) && strings.EqualFold(tag[:len(partitionPrefix)], partitionPrefix) {
		tag = tag[len(partitionPrefix):]
	}
	n, err := strconv.Atoi(tag)
	if err != nil {
		return 0
	}
	return n
}

// IsSet reports whether any partition identifier is present.
func (p Partition) IsSet() bool {
	return p.Tag != "" || p.Number != 0
}

// UnmarshalYAML accepts either an integer or a tagged string.
func (p *Partition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("partition: expected scalar, got kind %d", node.Kind)
	}
	if node.ShortTag() == "!!int" {
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return fmt.Errorf("partition: %w", err)
		}
		*p = PartitionNumber(n)
		return nil
	}
	*p = PartitionTag(node.Value)
	return nil
}

// MarshalYAML writes the partition back in the form it was read.
func (p Partition) MarshalYAML() (interface{}, error) {
	if p.Tag != "" {
		return p.Tag, nil
	}
	return p.Number, nil
}

// Color is a CSS-style hex color such as "#1e1e2e". Empty means absent.
type Color string

// Hex returns c trimmed and with a leading "#", or "" when c is empty.
func (c Color) Hex() string {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return ""
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	return s
}

// NewTabLocation is the placeholder location of a blank tab.
const NewTabLocation = "about:newtab"

// TabViewModel is the read-only snapshot of one tab handed to the presentation layer.
type TabViewModel struct {
	ID                  string     `yaml:"id"`
	Breakpoint          Breakpoint `yaml:"breakpoint"`
	HoverState          bool       `yaml:"hover"`
	PinnedLocation      string     `yaml:"pinned_location"`
	IsActive            bool       `yaml:"active"`
	IsPrivate           bool       `yaml:"private"`
	Partition           Partition  `yaml:"partition"`
	AudioPlaybackActive bool       `yaml:"audio_playing"`
	AudioMuted          bool       `yaml:"audio_muted"`
	ThemeColor          Color      `yaml:"theme_color"`
	ComputedThemeColor  Color      `yaml:"computed_theme_color"`
	Location            string     `yaml:"location"`
	PageTitle           string     `yaml:"title"`
	Icon                string     `yaml:"icon"`
	IsLoading           bool       `yaml:"loading"`
}

// IsPinned reports whether the tab has a pinned location.
func (t TabViewModel) IsPinned() bool {
	return t.PinnedLocation != ""
}

// EffectiveThemeColor prefers the page's declared theme color over the computed one.
func (t TabViewModel) EffectiveThemeColor() Color {
	if t.ThemeColor != "" {
		return t.ThemeColor
	}
	return t.ComputedThemeColor
}

// HasSecondaryIcon reports whether a private or session badge competes for space.
func (t TabViewModel) HasSecondaryIcon() bool {
	return t.IsPrivate || t.Partition.IsSet()
}
