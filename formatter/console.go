package formatter

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/attribs"
	"github.com/npillmayer/attribs/runs"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
	"golang.org/x/term"
)

// Config directs line breaking for console output.
type Config struct {
	LineWidth int
	Context   *uax11.Context
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

// ConsoleFixedWidth renders attributed text to a console with a fixed width
// font, visualizing attribute runs with ANSI colors and type effects.
type ConsoleFixedWidth struct {
	ColorFunc func(attribs.ComposedStyle) *color.Color
}

// NewConsoleFixedWidthFormat creates a new formatter for consoles with a
// fixed width font. colorFunc maps a composed style to a terminal color; it
// may be nil, selecting the default mapping.
func NewConsoleFixedWidthFormat(colorFunc func(attribs.ComposedStyle) *color.Color) *ConsoleFixedWidth {
	fw := &ConsoleFixedWidth{ColorFunc: colorFunc}
	if fw.ColorFunc == nil {
		fw.ColorFunc = DefaultColors
	}
	return fw
}

// Print outputs an attributed text to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func (fw *ConsoleFixedWidth) Print(text string, store attribs.Store, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return fw.Output(text, store, os.Stdout, config)
}

// Output formats an attributed text onto a writer, wrapping lines with
// first-fit line breaking.
func (fw *ConsoleFixedWidth) Output(text string, store attribs.Store, out io.Writer, config *Config) error {
	if config == nil {
		return attribs.ErrIllegalArguments
	}
	if config.Context == nil {
		config.Context = uax11.LatinContext
	}
	// the merge folds into one reusable accumulator, so snapshot every style
	var merged []runs.Run[attribs.ComposedStyle]
	it := store.MergedRunsFrom(0)
	for it.Next() {
		r := it.Run()
		merged = append(merged, runs.Run[attribs.ComposedStyle]{Start: r.Start, Value: *r.Value})
	}
	breaks := firstFit(text, config.LineWidth, config.Context)
	lineStart := 0
	for _, pos := range breaks {
		line := strings.TrimRight(text[lineStart:pos], " \t\n")
		fw.printLine(line, int64(lineStart), merged, out)
		io.WriteString(out, "\n")
		lineStart = pos
	}
	return nil
}

// printLine writes one line, splitting it at attribute change-points.
func (fw *ConsoleFixedWidth) printLine(line string, offset int64, merged []runs.Run[attribs.ComposedStyle], out io.Writer) {
	end := offset + int64(len(line))
	for i, run := range merged {
		runEnd := end
		if i+1 < len(merged) {
			runEnd = merged[i+1].Start
		}
		if runEnd <= offset || run.Start >= end {
			continue
		}
		from, to := max(run.Start, offset), min(runEnd, end)
		frag := line[from-offset : to-offset]
		if c := fw.ColorFunc(run.Value); c != nil {
			c.Fprint(out, frag)
		} else {
			io.WriteString(out, frag)
		}
	}
}

// DefaultColors is the default mapping from composed styles to terminal
// colors: font weight and style map to bold/italic type effects, decorations
// to underline/crossed-out, and the foreground brush to the nearest of the
// eight basic ANSI colors. Paint-brushed text falls back to cyan, as paints
// are opaque to the formatter.
func DefaultColors(cs attribs.ComposedStyle) *color.Color {
	c := color.New()
	if cs.FontWeight != nil && *cs.FontWeight >= attribs.WeightBold {
		c.Add(color.Bold)
	}
	if cs.FontStyle != nil && *cs.FontStyle == attribs.StyleItalic {
		c.Add(color.Italic)
	}
	if cs.Decoration != nil {
		if cs.Decoration.Contains(attribs.Underline) {
			c.Add(color.Underline)
		}
		if cs.Decoration.Contains(attribs.LineThrough) {
			c.Add(color.CrossedOut)
		}
	}
	if cs.Foreground != nil {
		if col, ok := cs.Foreground.Left(); ok {
			c.Add(nearestANSI(col))
		} else {
			c.Add(color.FgCyan)
		}
	}
	return c
}

// nearestANSI reduces an RGB color to one of the eight basic ANSI foreground
// colors by thresholding each channel.
func nearestANSI(col attribs.Color) color.Attribute {
	bit := func(v uint8) int {
		if v >= 0x80 {
			return 1
		}
		return 0
	}
	switch bit(col.R)<<2 | bit(col.G)<<1 | bit(col.B) {
	case 0b000:
		return color.FgBlack
	case 0b001:
		return color.FgBlue
	case 0b010:
		return color.FgGreen
	case 0b011:
		return color.FgCyan
	case 0b100:
		return color.FgRed
	case 0b101:
		return color.FgMagenta
	case 0b110:
		return color.FgYellow
	}
	return color.FgWhite
}

// --- Line breaking -----------------------------------------------------------

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)
*/
func firstFit(text string, linewidth int, context *uax11.Context) []int {
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	spaceleft := linewidth
	breaks := make([]int, 0, 20)
	prevpos := 0
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		tracer().Debugf("next segment: %s   (len=%d|%d)", gstr, fraglen, spaceleft)
		if fraglen >= spaceleft {
			breaks = append(breaks, prevpos)
			spaceleft = linewidth - fraglen
		} else {
			spaceleft -= fraglen
		}
		prevpos += len(frag)
	}
	if len(breaks) == 0 || breaks[len(breaks)-1] < len(text) {
		breaks = append(breaks, len(text))
	}
	return breaks
}
