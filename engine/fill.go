// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"strings"

	"github.com/danielhkuo/quickly-map/models"
)

const (
	stripeWidth    = 10
	dimmedOpacity  = 0.25
	lumaThreshold  = 0.5
	patternKeyRoot = "repeat"
)

// Palette holds the color helpers a fill needs
type Palette struct {
	Blend func(colors []string) string
	Luma  func(hex string) float64
}

// ComputeFill turns a region's winners into a paint descriptor.
//
// A single winner paints with its clamped margin color. A tie paints a
// striped pattern keyed by the tied candidate ids, and every stripe uses the
// candidate's first margin regardless of its stored margin.
func ComputeFill(region models.Region, winners []models.Winner, p Palette) models.Fill {
	var fill models.Fill
	var lumaColor string

	switch len(winners) {
	case 0:
		// ResolveWinners never returns none; direct callers still get a tossup fill
		lumaColor = models.TossupColor
		fill.Color = models.TossupColor
	case 1:
		w := winners[0]
		fill.Color = w.Candidate.Margins[ClampMargin(w.Margin, w.Candidate)].Color
		lumaColor = fill.Color
	default:
		key := PatternKey(winners)
		stripes := make([]string, len(winners))
		for i, w := range winners {
			stripes[i] = w.Candidate.Margins[0].Color
		}
		fill.PatternKey = key
		fill.Stripes = stripes
		fill.Width = stripeWidth * len(winners)
		lumaColor = p.Blend(stripes)
	}

	fill.TextColor = "white"
	if p.Luma(lumaColor) > lumaThreshold {
		fill.TextColor = "black"
	}

	fill.Opacity = 1
	if region.Disabled || region.Locked || region.PermaLocked {
		fill.Opacity = dimmedOpacity
	}
	fill.TextOpacity = 1
	if region.PermaLocked {
		fill.TextOpacity = 0
	}
	return fill
}

// PatternKey identifies a tie pattern so identical ties share one pattern
func PatternKey(winners []models.Winner) string {
	var b strings.Builder
	b.WriteString(patternKeyRoot)
	for _, w := range winners {
		b.WriteByte('-')
		b.WriteString(w.Candidate.ID)
	}
	return b.String()
}
