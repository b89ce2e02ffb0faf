package galaxy

import "errors"

var ErrEmptyPalette = errors.New("galaxy: palette has no colors")
