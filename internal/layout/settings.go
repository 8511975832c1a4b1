package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned for cell dimensions which are not positive.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings are the pixel dimensions of a single monospace character cell.
type Settings struct {
	TextWidth  float64 `yaml:"text_width" json:"text_width"`
	TextHeight float64 `yaml:"text_height" json:"text_height"`
}

// DefaultSettings returns 8x16 pixel cells.
func DefaultSettings() Settings {
	return Settings{TextWidth: 8, TextHeight: 16}
}

// Validate checks that both cell dimensions are positive.
func (s Settings) Validate() error {
	if s.TextWidth <= 0 || s.TextHeight <= 0 {
		return fmt.Errorf("%w: cell size %gx%g", ErrInvalidSettings, s.TextWidth, s.TextHeight)
	}
	return nil
}

// baseline returns the y coordinate of the text baseline in row.
func (s Settings) baseline(row int) float64 {
	return float64(row)*s.TextHeight + s.TextHeight*3/4
}
