// Package theme provides the visual defaults of the slimy widgets and the
// YAML theme file format.
package theme

import (
	"time"

	"github.com/go-drift/slimy/pkg/graphics"
)

// CurrentVersion is the theme file version written by this package.
const CurrentVersion = "v1.0.0"

// ThemeData contains the styling for every widget kind.
type ThemeData struct {
	// Version is the semantic version of the theme format.
	Version string

	ProgressBar ProgressBarTheme
	TextInput   TextInputTheme
}

// ProgressBarTheme defines default styling for progress bars.
type ProgressBarTheme struct {
	// Fill is the color of the filled portion.
	Fill graphics.Color
	// Track is the color of the unfilled track.
	Track graphics.Color
	// Height is the preferred bar height in host units.
	Height float64
}

// TextInputTheme defines default styling for text inputs.
type TextInputTheme struct {
	Text        graphics.Color
	Background  graphics.Color
	Border      graphics.Color
	Placeholder graphics.Color
	Caret       graphics.Color
	Selection   graphics.Color

	// Focus is the border color while the input has focus.
	Focus graphics.Color
	// Padding is the inner padding on every side.
	Padding float64
	// BlinkInterval is the caret blink period. Zero disables blinking.
	BlinkInterval time.Duration
}

// Default returns the default theme.
func Default() *ThemeData {
	return &ThemeData{
		Version: CurrentVersion,
		ProgressBar: ProgressBarTheme{
			Fill:   graphics.RGB(0x4C, 0xAF, 0x50),
			Track:  graphics.RGB(0xE0, 0xE0, 0xE0),
			Height: 12,
		},
		TextInput: TextInputTheme{
			Text:          graphics.ColorBlack,
			Background:    graphics.ColorWhite,
			Border:        graphics.RGB(0xCC, 0xCC, 0xCC),
			Focus:         graphics.RGB(0x00, 0x7A, 0xFF),
			Placeholder:   graphics.RGB(0x99, 0x99, 0x99),
			Caret:         graphics.ColorBlack,
			Selection:     graphics.RGB(0xB3, 0xD7, 0xFF),
			Padding:       4,
			BlinkInterval: 750 * time.Millisecond,
		},
	}
}

// Dark returns a dark variant of the default theme.
func Dark() *ThemeData {
	t := Default()
	t.ProgressBar.Track = graphics.RGB(0x42, 0x42, 0x42)
	t.TextInput = TextInputTheme{
		Text:          graphics.RGB(0xE6, 0xE6, 0xE6),
		Background:    graphics.RGB(0x1E, 0x1E, 0x1E),
		Border:        graphics.RGB(0x55, 0x55, 0x55),
		Focus:         graphics.RGB(0x0A, 0x84, 0xFF),
		Placeholder:   graphics.RGB(0x80, 0x80, 0x80),
		Caret:         graphics.RGB(0xE6, 0xE6, 0xE6),
		Selection:     graphics.RGB(0x26, 0x4F, 0x78),
		Padding:       4,
		BlinkInterval: 750 * time.Millisecond,
	}
	return t
}
