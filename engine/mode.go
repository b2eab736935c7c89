// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import (
	"fmt"

	"github.com/danielhkuo/quickly-map/models"
)

// Mode selects which edit a click on a region performs
type Mode string

const (
	ModeFill    Mode = models.ModeFill
	ModeSplit   Mode = models.ModeSplit
	ModeEdit    Mode = models.ModeEdit
	ModeDisable Mode = models.ModeDisable
	ModeLock    Mode = models.ModeLock
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeFill, ModeSplit, ModeEdit, ModeDisable, ModeLock:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}
