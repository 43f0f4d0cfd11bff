package dump

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/baseutil/bitfield"
	"golang.org/x/term"
)

// Config controls the rendering of a bit field.
type Config struct {
	WordsPerRow int          // words on one output row; 0 = derive from terminal width
	SetBit      *color.Color // color for set bits
	ClearBit    *color.Color // color for clear bits
}

// glyphs for the two bit states.
const (
	setGlyph   = "1"
	clearGlyph = "."
)

// glyph cells for one word plus its separating space.
const wordCells = bitfield.WordBits + 1

// ConfigFromTerminal creates a Config sized to the current terminal. If
// stdout is not a terminal (or its size cannot be read), a 65-column layout
// is assumed.
func ConfigFromTerminal() *Config {
	config := &Config{
		SetBit:   color.New(color.FgRed),
		ClearBit: color.New(color.FgBlue),
	}
	cols := 65
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
			cols = w
		} else {
			tracer().Debugf("cannot read terminal size: %s", err)
		}
	}
	config.WordsPerRow = (cols - 6) / wordCells
	if config.WordsPerRow < 1 {
		config.WordsPerRow = 1
	}
	return config
}

// Field renders f to w, least significant bit first, one glyph per bit and
// one group per backing word. Every row is prefixed with the bit index of its
// first glyph.
//
// If config is nil, a config is created from the current terminal's
// properties.
func Field(w io.Writer, f bitfield.Field, config *Config) {
	if config == nil {
		config = ConfigFromTerminal()
	}
	perRow := config.WordsPerRow
	if perRow < 1 {
		perRow = 1
	}
	for word := 0; word < len(f); word++ {
		if word%perRow == 0 {
			if word > 0 {
				io.WriteString(w, "\n")
			}
			fmt.Fprintf(w, "[%3d] ", word*bitfield.WordBits)
		} else {
			io.WriteString(w, " ")
		}
		for pos := uint(0); pos < bitfield.WordBits; pos++ {
			bit := uint(word)*bitfield.WordBits + pos
			if f.Test(bit) {
				printGlyph(w, config.SetBit, setGlyph)
			} else {
				printGlyph(w, config.ClearBit, clearGlyph)
			}
		}
	}
	if len(f) > 0 {
		io.WriteString(w, "\n")
	}
}

func printGlyph(w io.Writer, c *color.Color, glyph string) {
	if c != nil {
		c.Fprint(w, glyph)
		return
	}
	io.WriteString(w, glyph)
}
