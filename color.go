package ask

import (
	"fmt"
	"os"
)

// Color represents an RGB color with optional bold emphasis.
type Color struct {
	R    uint8 `json:"r"`
	G    uint8 `json:"g"`
	B    uint8 `json:"b"`
	Bold bool  `json:"bold"`
}

// fg returns the ANSI escape sequence setting c as the foreground color.
func (c Color) fg() string {
	if c.Bold {
		return fmt.Sprintf("\x1b[1;38;2;%d;%d;%dm", c.R, c.G, c.B)
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// bg returns the ANSI escape sequence setting c as the background color.
func (c Color) bg() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// ansiReset returns the ANSI reset sequence.
func ansiReset() string {
	return "\x1b[0m"
}

// RenderConfig is the flat set of style options applied at the renderer
// call sites. Zero values are never consulted directly; prompts fall back
// to DefaultRenderConfig (or the empty config when NO_COLOR is set).
type RenderConfig struct {
	Name     string `json:"name"`
	Prefix   Color  `json:"prefix"`   // "? " marker before the message
	Answer   Color  `json:"answer"`   // submitted answer on the permanent line
	Error    Color  `json:"error"`    // validation error lines
	Help     Color  `json:"help"`     // help lines
	Selected Color  `json:"selected"` // highlighted list option
	Checked  Color  `json:"checked"`  // multi-select checkbox marker
	Disabled Color  `json:"disabled"` // out-of-range calendar dates
	Today    Color  `json:"today"`    // today's date on the calendar
	CursorFG Color  `json:"cursorFg"` // text cell under the input cursor
	CursorBG Color  `json:"cursorBg"`

	// DisableColors suppresses every color and style sequence.
	DisableColors bool `json:"disableColors"`
}

// RenderConfigDefault is the built-in color scheme: green prefix, cyan
// accents, red errors, matching the look of common prompt tooling.
var RenderConfigDefault = &RenderConfig{
	Name:     "default",
	Prefix:   Color{R: 0, G: 255, B: 0, Bold: true},
	Answer:   Color{R: 0, G: 255, B: 255},
	Error:    Color{R: 255, G: 0, B: 0},
	Help:     Color{R: 0, G: 255, B: 255},
	Selected: Color{R: 0, G: 255, B: 255},
	Checked:  Color{R: 0, G: 255, B: 0},
	Disabled: Color{R: 128, G: 128, B: 128},
	Today:    Color{R: 0, G: 255, B: 0},
	CursorFG: Color{R: 0, G: 0, B: 0},
	CursorBG: Color{R: 192, G: 192, B: 192},
}

// RenderConfigEmpty renders everything in the terminal's default colors.
var RenderConfigEmpty = &RenderConfig{
	Name:          "empty",
	DisableColors: true,
}

// defaultRenderConfig picks the default scheme, honoring the NO_COLOR
// convention. Prompts call this at construction time so the decision is
// threaded explicitly instead of read ambiently during rendering. Each
// call returns a fresh copy, so mutating one prompt's config never
// restyles another prompt or the package defaults.
func defaultRenderConfig() *RenderConfig {
	config := *RenderConfigDefault
	if os.Getenv("NO_COLOR") != "" {
		config = *RenderConfigEmpty
	}
	return &config
}
