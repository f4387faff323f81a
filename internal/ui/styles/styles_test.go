package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/lazyvibe/tabdeck/internal/contrast"
	"github.com/lazyvibe/tabdeck/internal/model"
)

func TestThemeBackground(t *testing.T) {
	t.Parallel()

	def := LightTab
	require.Equal(t, def, ThemeBackground("", def))
	require.Equal(t, def, ThemeBackground("not-a-color", def))
	require.Equal(t, lipgloss.Color("#1e1e2e"), ThemeBackground("#1e1e2e", def))

	// a theme color without "#" paints the same background its ink was chosen for
	bg := ThemeBackground("1e1e2e", def)
	require.Equal(t, lipgloss.Color("#1e1e2e"), bg)
	require.Equal(t, contrast.White, contrast.TextColorFor(model.Color("1e1e2e")))
}

func TestInkColor(t *testing.T) {
	t.Parallel()

	require.Equal(t, Base, InkColor("", Base))
	require.Equal(t, lipgloss.Color("#FFFFFF"), InkColor(contrast.White, Base))
	require.Equal(t, lipgloss.Color("#000000"), InkColor(contrast.Black, Base))
}
