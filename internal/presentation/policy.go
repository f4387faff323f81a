package presentation

import (
	"runtime"
	"slices"

	"github.com/lazyvibe/tabdeck/internal/contrast"
	"github.com/lazyvibe/tabdeck/internal/model"
)

// Buckets is a set of breakpoints an indicator treats alike.
type Buckets []model.Breakpoint

// Contains reports whether bp is in the set.
func (b Buckets) Contains(bp model.Breakpoint) bool {
	return slices.Contains(b, bp)
}

// Policy holds the constants the selector is configured with.
type Policy struct {
	// MaxPartitionDigit caps the digit drawn on the session badge.
	MaxPartitionDigit int
	// PaintTabs lets theme colors drive title and badge ink.
	PaintTabs bool
	// CloseFootprint is the width reserved for the close button while hovering.
	CloseFootprint int
	// BoldTitles selects the heavier title weight used on Windows.
	BoldTitles bool

	FaviconNarrow    Buckets
	AudioMedium      Buckets
	AudioNarrow      Buckets
	PrivateNarrow    Buckets
	SessionNarrow    Buckets
	TitleHidden      Buckets
	TitleHoverNarrow Buckets
	CloseNarrow      Buckets

	// TextColorFor picks ink for a theme color. Nil means contrast.TextColorFor.
	TextColorFor func(model.Color) contrast.Ink
}

// DefaultMaxPartitionDigit is the largest session number a badge can show.
const DefaultMaxPartitionDigit = 9

// DefaultPolicy returns the stock bucket assignments.
func DefaultPolicy() Policy {
	return Policy{
		MaxPartitionDigit: DefaultMaxPartitionDigit,
		PaintTabs:         true,
		CloseFootprint:    2,
		BoldTitles:        runtime.GOOS == "windows",

		FaviconNarrow: Buckets{model.BreakpointSmallest},
		AudioMedium:   Buckets{model.BreakpointLarge, model.BreakpointLargeMedium},
		AudioNarrow: Buckets{
			model.BreakpointMedium,
			model.BreakpointMediumSmall,
			model.BreakpointSmall,
			model.BreakpointExtraSmall,
			model.BreakpointSmallest,
		},
		PrivateNarrow: Buckets{model.BreakpointSmall, model.BreakpointExtraSmall, model.BreakpointSmallest},
		SessionNarrow: Buckets{model.BreakpointSmall, model.BreakpointExtraSmall, model.BreakpointSmallest},
		TitleHidden:   Buckets{model.BreakpointExtraSmall, model.BreakpointSmallest},
		TitleHoverNarrow: Buckets{
			model.BreakpointMediumSmall,
			model.BreakpointSmall,
			model.BreakpointExtraSmall,
			model.BreakpointSmallest,
		},
		CloseNarrow: Buckets{model.BreakpointExtraSmall, model.BreakpointSmallest},

		TextColorFor: contrast.TextColorFor,
	}
}

func (p Policy) textColorFor(c model.Color) contrast.Ink {
	if p.TextColorFor == nil {
		return contrast.TextColorFor(c)
	}
	return p.TextColorFor(c)
}
