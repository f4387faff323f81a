package contrast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lazyvibe/tabdeck/internal/model"
)

func TestTextColorFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bg   model.Color
		want Ink
	}{
		{"#ffffff", Black},
		{"#FFF", Black},
		{"#f5f5dc", Black},
		{"#ffd700", Black},
		{"#000000", White},
		{"#1e1e2e", White},
		{"#003366", White},
		{"7c3aed", White},
		{"", Black},
		{"not-a-color", Black},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, TextColorFor(tc.bg), "background %q", tc.bg)
	}
}

func TestLuminanceBounds(t *testing.T) {
	t.Parallel()

	l, ok := Luminance("#000")
	require.True(t, ok)
	require.InDelta(t, 0, l, 1e-9)

	l, ok = Luminance("#ffffff")
	require.True(t, ok)
	require.InDelta(t, 1, l, 1e-9)

	_, ok = Luminance("")
	require.False(t, ok)
}

func TestRatioSymmetric(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 21, Ratio(1, 0), 1e-9)
	require.InDelta(t, 21, Ratio(0, 1), 1e-9)
	require.InDelta(t, 1, Ratio(0.3, 0.3), 1e-9)
}

func TestInkHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#FFFFFF", White.Hex())
	require.Equal(t, "#000000", Black.Hex())
}
