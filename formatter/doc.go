/*
Package formatter formats attributed text for output devices.

# Status

Console output with a fixed width font is supported; proportional fonts and
bidirectional text are not.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package formatter

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'attribs'
func tracer() tracing.Trace {
	return tracing.Select("attribs")
}
