// Package styles defines the visual appearance for the tabdeck TUI.
// Using Catppuccin Mocha color palette for a modern, aesthetic look.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lazyvibe/tabdeck/internal/contrast"
	"github.com/lazyvibe/tabdeck/internal/model"
)

// Catppuccin Mocha color palette
var (
	Pink     = lipgloss.Color("#F5C2E7")
	Mauve    = lipgloss.Color("#CBA6F7")
	Red      = lipgloss.Color("#F38BA8")
	Peach    = lipgloss.Color("#FAB387")
	Yellow   = lipgloss.Color("#F9E2AF")
	Green    = lipgloss.Color("#A6E3A1")
	Sapphire = lipgloss.Color("#74C7EC")
	Blue     = lipgloss.Color("#89B4FA")

	// Surface colors
	Text     = lipgloss.Color("#CDD6F4")
	Subtext0 = lipgloss.Color("#A6ADC8")
	Overlay0 = lipgloss.Color("#6C7086")
	Surface1 = lipgloss.Color("#45475A")
	Surface0 = lipgloss.Color("#313244")
	Base     = lipgloss.Color("#1E1E2E")
	Mantle   = lipgloss.Color("#181825")
	Crust    = lipgloss.Color("#11111B")
)

// Semantic colors (using the palette)
var (
	Primary    = Mauve
	Secondary  = Green
	Accent     = Sapphire
	Danger     = Red
	Warning    = Peach
	Muted      = Overlay0
	SurfaceCol = Surface0
	TextCol    = Text
	TextMuted  = Subtext0
	Border     = Surface1
	// Highlight is the audio indicator color.
	Highlight = Blue
	// PrivateTab is the background of private tabs.
	PrivateTab = lipgloss.Color("#3B2A5C")
	// LightTab is the background of inactive tabs, light enough for black ink.
	LightTab = lipgloss.Color("#DCE0E8")
)

// Tab styles
var (
	// TabBarStyle is the strip container.
	TabBarStyle = lipgloss.NewStyle().
			Background(Mantle)

	// TabStyle is a single tab cell.
	TabStyle = lipgloss.NewStyle().
			Background(LightTab).
			Padding(0, 1).
			MarginRight(1)

	// TabActiveStyle marks the selected tab.
	TabActiveStyle = lipgloss.NewStyle().
			Background(LightTab).
			Underline(true).
			Padding(0, 1).
			MarginRight(1)

	// TabCloseStyle is the close glyph.
	TabCloseStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	// SessionBadgeStyle frames the partition digit.
	SessionBadgeStyle = lipgloss.NewStyle().
				Bold(true)
)

// StatusBar styles
var (
	StatusBarKey = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	StatusBarDesc = lipgloss.NewStyle().
			Foreground(Overlay0)

	StatusBarBrand = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)

// Panel styles
var (
	// PanelTitle for panel headers
	PanelTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextCol).
			Padding(0, 1)

	// PanelBox frames a detail page.
	PanelBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	// ButtonPrimary is the main call to action.
	ButtonPrimary = lipgloss.NewStyle().
			Foreground(Base).
			Background(Primary).
			Bold(true).
			Padding(0, 2).
			MarginRight(1)

	// ButtonDisabled is a primary button that cannot be pressed.
	ButtonDisabled = lipgloss.NewStyle().
			Foreground(Overlay0).
			Background(Surface0).
			Padding(0, 2).
			MarginRight(1)

	// ButtonWhite is a secondary button.
	ButtonWhite = lipgloss.NewStyle().
			Foreground(Base).
			Background(Text).
			Padding(0, 2).
			MarginRight(1)

	// TableHeader is a file list header cell.
	TableHeader = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// TableRow is a file list row.
	TableRow = lipgloss.NewStyle().
			Foreground(TextCol)

	// Notice is fine print under a panel.
	Notice = lipgloss.NewStyle().
		Foreground(Overlay0).
		Italic(true)

	// ErrorText is an inline error message.
	ErrorText = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)
)

// InkColor maps a contrast ink to a terminal color. Empty ink falls back to def.
func InkColor(ink contrast.Ink, def lipgloss.TerminalColor) lipgloss.TerminalColor {
	if ink == "" {
		return def
	}
	return lipgloss.Color(ink.Hex())
}

// ThemeBackground returns the tab background for a page theme color.
// Colors that do not parse fall back to def.
func ThemeBackground(c model.Color, def lipgloss.TerminalColor) lipgloss.TerminalColor {
	if _, ok := contrast.Luminance(c); !ok {
		return def
	}
	return lipgloss.Color(c.Hex())
}

// Spinner frames for animated loading
var SpinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Icons
var (
	IconDefault   = "◇"
	IconFavicon   = "◆"
	IconVolumeOn  = "♪"
	IconVolumeOff = "⊘"
	IconPrivate   = "◉"
	IconClose     = "✕"
	IconSortAsc   = "▲"
	IconSortDesc  = "▼"
)
