package chains

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ConsoleFormat renders list contents to a console with a fixed width font,
// wrapping long lists at the terminal's line width (for debugging purposes).
type ConsoleFormat struct {
	Separator string
	LineWidth int
	delim     *color.Color
	value     *color.Color
	ccnt      int // number of character positions already printed for line
}

// NewConsoleFormat creates a formatter with a heuristic line width taken from
// the current terminal's properties (if stdout is interactive).
func NewConsoleFormat() *ConsoleFormat {
	return &ConsoleFormat{
		Separator: ", ",
		LineWidth: lineWidthFromTerminal(),
		delim:     color.New(color.FgRed),
		value:     color.New(color.FgBlue),
	}
}

// FprintValues outputs a value sequence as a bracketed, comma-separated
// listing. Long listings wrap at the formatter's line width.
//
// The source list is not mutated; do not hand in a consuming sequence.
func FprintValues[T any](f *ConsoleFormat, w io.Writer, values iter.Seq[T]) error {
	if f == nil {
		f = NewConsoleFormat()
	}
	f.ccnt = 0
	var err error
	f.emit(w, f.delim, "[", &err)
	first := true
	for v := range values {
		if !first {
			f.emit(w, f.delim, f.Separator, &err)
		}
		first = false
		f.emit(w, f.value, fmt.Sprint(v), &err)
		if err != nil {
			return err
		}
	}
	f.emit(w, f.delim, "]", &err)
	return err
}

// emit writes a colored fragment, breaking the line when the width target
// would be exceeded.
func (f *ConsoleFormat) emit(w io.Writer, c *color.Color, s string, err *error) {
	if *err != nil {
		return
	}
	if f.LineWidth > 0 && f.ccnt+len(s) > f.LineWidth {
		if _, e := io.WriteString(w, "\n"); e != nil {
			*err = e
			return
		}
		f.ccnt = 0
	}
	if _, e := c.Fprint(w, s); e != nil {
		*err = e
		return
	}
	f.ccnt += len(s)
}

// lineWidthFromTerminal checks whether stdout is a terminal, and if so reads
// the terminal's width.
func lineWidthFromTerminal() int {
	width := 65
	if term.IsTerminal(int(os.Stdout.Fd())) {
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && w > 10 {
			width = w - 5
		}
	}
	T().P("format", "console").Infof("setting line length to %d en", width)
	return width
}
