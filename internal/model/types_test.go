package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestBreakpointForWidth(t *testing.T) {
	t.Parallel()

	cases := []struct {
		width, tabs int
		want        Breakpoint
	}{
		{120, 0, BreakpointDefault},
		{120, 2, BreakpointDefault},
		{120, 5, BreakpointLarge},
		{120, 6, BreakpointLargeMedium},
		{120, 7, BreakpointMedium},
		{120, 10, BreakpointMediumSmall},
		{120, 13, BreakpointSmall},
		{120, 20, BreakpointExtraSmall},
		{120, 40, BreakpointSmallest},
		{0, 3, BreakpointSmallest},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, BreakpointForWidth(tc.width, tc.tabs), "%d/%d", tc.width, tc.tabs)
	}
}

func TestParseBreakpoint(t *testing.T) {
	t.Parallel()

	bp, ok := ParseBreakpoint("mediumsmall")
	require.True(t, ok)
	require.Equal(t, BreakpointMediumSmall, bp)

	bp, ok = ParseBreakpoint("huge")
	require.False(t, ok)
	require.Equal(t, BreakpointDefault, bp)
}

func TestPartitionNormalize(t *testing.T) {
	t.Parallel()

	require.Equal(t, 7, PartitionTag("partition-7").Normalize())
	require.Equal(t, 7, PartitionTag("PARTITION-7").Normalize())
	require.Equal(t, 7, PartitionNumber(7).Normalize())
	require.Equal(t, 0, PartitionTag("persist:x").Normalize())
	require.Equal(t, 0, Partition{}.Normalize())
	require.False(t, Partition{}.IsSet())
	require.True(t, PartitionTag("partition-0").IsSet())
}

func TestPartitionYAML(t *testing.T) {
	t.Parallel()

	var tabs []TabViewModel
	src := `
- id: a
  partition: 4
- id: b
  partition: partition-12
- id: c
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &tabs))
	require.Len(t, tabs, 3)
	require.Equal(t, PartitionNumber(4), tabs[0].Partition)
	require.Equal(t, PartitionTag("partition-12"), tabs[1].Partition)
	require.False(t, tabs[2].Partition.IsSet())

	out, err := yaml.Marshal(tabs[1].Partition)
	require.NoError(t, err)
	require.Equal(t, "partition-12\n", string(out))
}

func TestViewModelHelpers(t *testing.T) {
	t.Parallel()

	vm := TabViewModel{ComputedThemeColor: "#111111"}
	require.Equal(t, Color("#111111"), vm.EffectiveThemeColor())
	vm.ThemeColor = "#222222"
	require.Equal(t, Color("#222222"), vm.EffectiveThemeColor())

	require.False(t, vm.IsPinned())
	require.False(t, vm.HasSecondaryIcon())
	vm.IsPrivate = true
	require.True(t, vm.HasSecondaryIcon())
}

func TestColorHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Color("").Hex())
	require.Equal(t, "", Color("  ").Hex())
	require.Equal(t, "#1e1e2e", Color("1e1e2e").Hex())
	require.Equal(t, "#1e1e2e", Color(" #1e1e2e ").Hex())
}
