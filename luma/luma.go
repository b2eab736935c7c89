// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package luma provides the color helpers used to pick readable text colors:
// blending a set of hex colors and computing relative luma.
package luma

import (
	"fmt"
	"strconv"
	"strings"
)

type rgb struct {
	r, g, b uint8
}

// parseHex accepts #rgb or #rrggbb (with or without the leading #)
func parseHex(hex string) (rgb, bool) {
	h := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return rgb{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{uint8(v >> 16), uint8(v >> 8), uint8(v)}, true
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
}

// Blend averages the channels of every parseable color.
// Unparseable entries are skipped; an empty result is black.
func Blend(colors []string) string {
	var r, g, b, n int
	for _, hex := range colors {
		c, ok := parseHex(hex)
		if !ok {
			continue
		}
		r += int(c.r)
		g += int(c.g)
		b += int(c.b)
		n++
	}
	if n == 0 {
		return rgb{}.hex()
	}
	return rgb{uint8(r / n), uint8(g / n), uint8(b / n)}.hex()
}

// Luma returns the Rec. 709 luma of a hex color in [0, 1].
// Unparseable colors are treated as black.
func Luma(hex string) float64 {
	c, ok := parseHex(hex)
	if !ok {
		return 0
	}
	return (0.2126*float64(c.r) + 0.7152*float64(c.g) + 0.0722*float64(c.b)) / 255
}
