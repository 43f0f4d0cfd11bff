/*
Package dump renders bit fields for interactive debugging.

Output goes to an io.Writer, one glyph per bit with set bits highlighted in
color, grouped by backing word. The row width adapts to the terminal when no
explicit configuration is given. Nothing in the core packages depends on
dump; it exists purely for poking at bit fields from tests and tools.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package dump

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'baseutil'
func tracer() tracing.Trace {
	return tracing.Select("baseutil")
}
