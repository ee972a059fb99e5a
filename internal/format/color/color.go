// Package color provides utilities for coloring text output in the terminal.
package color

import "strings"

type ColorFn func(arg ...string) *Color

const (
	brightBlue   = "\x1b[94m"
	brightGray   = "\x1b[37m"
	brightGreen  = "\x1b[92m"
	brightOrange = "\x1b[38;5;214m"
	gray         = "\x1b[90m"

	bold   = "\x1b[1m"
	italic = "\x1b[3m"

	reset = "\x1b[0m"
)

var enabled = false

// Enable enables or disables color output.
func Enable(b bool) {
	enabled = b
}

// Color represents styled text with a specific color and formatting styles.
type Color struct {
	text   string
	color  string
	styles []string
}

func (c *Color) applyStyle(styles ...string) *Color {
	c.styles = append(c.styles, styles...)
	return c
}

func (c *Color) Bold() *Color {
	return c.applyStyle(bold)
}

func (c *Color) Italic() *Color {
	return c.applyStyle(italic)
}

// String returns the colored text, or the plain text when color output is
// disabled.
func (c *Color) String() string {
	if !enabled || (c.color == "" && len(c.styles) == 0) {
		return c.text
	}

	return c.color + strings.Join(c.styles, "") + c.text + reset
}

func addColor(color string) ColorFn {
	return func(arg ...string) *Color {
		return &Color{text: strings.Join(arg, " "), color: color}
	}
}

var (
	BrightBlue   = addColor(brightBlue)
	BrightGray   = addColor(brightGray)
	BrightGreen  = addColor(brightGreen)
	BrightOrange = addColor(brightOrange)
	Gray         = addColor(gray)
	Text         = addColor("")
)
